package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/playerdex/socialgraph/internal/models"
	"github.com/playerdex/socialgraph/internal/services"
)

type PlayerHandler struct {
	playerService services.PlayerServiceInterface
	friendService services.FriendServiceInterface
	blockService  services.BlockServiceInterface
}

func NewPlayerHandler(playerService services.PlayerServiceInterface, friendService services.FriendServiceInterface, blockService services.BlockServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		friendService: friendService,
		blockService:  blockService,
	}
}

type RegisterPlayerRequest struct {
	DiscordID int64 `json:"discord_id"`
}

type PlayerResponse struct {
	Player *models.Player `json:"player"`
}

type FriendListResponse struct {
	Friends []models.Friend `json:"friends"`
}

type BlockedListResponse struct {
	Blocked []models.BlockedPlayer `json:"blocked"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Register upserts a player by Discord ID, so repeated registrations of
// the same account return the existing row.
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DiscordID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid Discord ID")
		return
	}

	player, err := h.playerService.GetOrCreate(r.Context(), req.DiscordID)
	if err != nil {
		log.Printf("Error registering player: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, PlayerResponse{Player: player})
}

func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := h.playerService.GetByID(r.Context(), playerID)
	if errors.Is(err, services.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		log.Printf("Error getting player: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, PlayerResponse{Player: player})
}

// Delete removes a player. Friendships and blocks referencing the player
// go with it through the schema's cascade.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	err = h.playerService.Delete(r.Context(), playerID)
	if errors.Is(err, services.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		log.Printf("Error deleting player: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Player deleted"})
}

func (h *PlayerHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if _, err := h.playerService.GetByID(r.Context(), playerID); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		log.Printf("Error getting player: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	friends, err := h.friendService.ListFriends(r.Context(), playerID)
	if err != nil {
		log.Printf("Error listing friends: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, FriendListResponse{Friends: friends})
}

func (h *PlayerHandler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	playerID, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if _, err := h.playerService.GetByID(r.Context(), playerID); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		log.Printf("Error getting player: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	blocked, err := h.blockService.ListBlocked(r.Context(), playerID)
	if err != nil {
		log.Printf("Error listing blocked players: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, BlockedListResponse{Blocked: blocked})
}
