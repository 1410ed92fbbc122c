package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/playerdex/socialgraph/internal/models"
	"github.com/playerdex/socialgraph/internal/services"
)

type FriendHandler struct {
	friendService services.FriendServiceInterface
}

func NewFriendHandler(friendService services.FriendServiceInterface) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

type FriendshipRequest struct {
	PlayerID int64 `json:"player_id"`
	FriendID int64 `json:"friend_id"`
}

type FriendshipResponse struct {
	Friendship *models.Friendship `json:"friendship,omitempty"`
	Message    string             `json:"message,omitempty"`
}

func (h *FriendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FriendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID <= 0 || req.FriendID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	friendship, err := h.friendService.Befriend(r.Context(), req.PlayerID, req.FriendID)
	if errors.Is(err, services.ErrCannotFriendSelf) {
		writeError(w, http.StatusBadRequest, "Cannot friend yourself")
		return
	}
	if errors.Is(err, services.ErrPlayerBlocked) {
		writeError(w, http.StatusForbidden, "Cannot friend this player")
		return
	}
	if errors.Is(err, services.ErrFriendshipExists) {
		writeError(w, http.StatusConflict, "Players are already friends")
		return
	}
	if errors.Is(err, services.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		log.Printf("Error creating friendship: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, FriendshipResponse{Friendship: friendship})
}

// Remove deletes the friendship between two players regardless of which
// side created it.
func (h *FriendHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req FriendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID <= 0 || req.FriendID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	removed, err := h.friendService.Unfriend(r.Context(), req.PlayerID, req.FriendID)
	if err != nil {
		log.Printf("Error removing friendship: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Friendship not found")
		return
	}

	writeJSON(w, http.StatusOK, FriendshipResponse{Message: "Friendship removed"})
}

func (h *FriendHandler) RemoveByID(w http.ResponseWriter, r *http.Request) {
	friendshipID, err := parsePathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid friendship ID")
		return
	}

	removed, err := h.friendService.RemoveFriendship(r.Context(), friendshipID)
	if err != nil {
		log.Printf("Error removing friendship: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Friendship not found")
		return
	}

	writeJSON(w, http.StatusOK, FriendshipResponse{Message: "Friendship removed"})
}
