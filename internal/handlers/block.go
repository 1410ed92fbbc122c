package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/playerdex/socialgraph/internal/models"
	"github.com/playerdex/socialgraph/internal/services"
)

type BlockHandler struct {
	blockService services.BlockServiceInterface
}

func NewBlockHandler(blockService services.BlockServiceInterface) *BlockHandler {
	return &BlockHandler{blockService: blockService}
}

type BlockRequest struct {
	PlayerID  int64 `json:"player_id"`
	BlockedID int64 `json:"blocked_id"`
}

type BlockResponse struct {
	Block   *models.Block `json:"block,omitempty"`
	Message string        `json:"message,omitempty"`
}

func (h *BlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID <= 0 || req.BlockedID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	block, err := h.blockService.Block(r.Context(), req.PlayerID, req.BlockedID)
	if errors.Is(err, services.ErrCannotBlockSelf) {
		writeError(w, http.StatusBadRequest, "Cannot block yourself")
		return
	}
	if errors.Is(err, services.ErrBlockExists) {
		writeError(w, http.StatusConflict, "Player is already blocked")
		return
	}
	if errors.Is(err, services.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "Player not found")
		return
	}
	if err != nil {
		log.Printf("Error creating block: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, BlockResponse{Block: block})
}

func (h *BlockHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PlayerID <= 0 || req.BlockedID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	removed, err := h.blockService.Unblock(r.Context(), req.PlayerID, req.BlockedID)
	if err != nil {
		log.Printf("Error removing block: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "Block not found")
		return
	}

	writeJSON(w, http.StatusOK, BlockResponse{Message: "Block removed"})
}
