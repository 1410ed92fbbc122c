package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playerdex/socialgraph/internal/models"
	"github.com/playerdex/socialgraph/internal/services"
)

func TestBlockHandler_Create_InvalidBody(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{BlockFunc: func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
		t.Fatal("Block should not be called for invalid body")
		return nil, nil
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	assertErrorResponse(t, rr, http.StatusBadRequest, "Invalid request body")
}

func TestBlockHandler_Create_Self(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{BlockFunc: func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
		return nil, services.ErrCannotBlockSelf
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":1}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	assertErrorResponse(t, rr, http.StatusBadRequest, "Cannot block yourself")
}

func TestBlockHandler_Create_AlreadyBlocked(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{BlockFunc: func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
		return nil, services.ErrBlockExists
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":2}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	assertErrorResponse(t, rr, http.StatusConflict, "Player is already blocked")
}

func TestBlockHandler_Create_MissingPlayer(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{BlockFunc: func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
		return nil, services.ErrPlayerNotFound
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":999}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	assertErrorResponse(t, rr, http.StatusNotFound, "Player not found")
}

func TestBlockHandler_Create_Success(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{BlockFunc: func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
		if blockerID != 1 || blockedID != 2 {
			t.Fatalf("unexpected pair: %d, %d", blockerID, blockedID)
		}
		return &models.Block{ID: 5, Player1: blockerID, Player2: blockedID}, nil
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":2}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected created, got %d", rr.Code)
	}
}

func TestBlockHandler_Remove_NotFound(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{UnblockFunc: func(ctx context.Context, blockerID, blockedID int64) (bool, error) {
		return false, nil
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":2}`))
	rr := httptest.NewRecorder()
	handler.Remove(rr, req)
	assertErrorResponse(t, rr, http.StatusNotFound, "Block not found")
}

func TestBlockHandler_Remove_Success(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{UnblockFunc: func(ctx context.Context, blockerID, blockedID int64) (bool, error) {
		return true, nil
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":2}`))
	rr := httptest.NewRecorder()
	handler.Remove(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected ok, got %d", rr.Code)
	}
}

func TestBlockHandler_Remove_ServiceError(t *testing.T) {
	handler := NewBlockHandler(&mockBlockService{UnblockFunc: func(ctx context.Context, blockerID, blockedID int64) (bool, error) {
		return false, errors.New("boom")
	}})

	req := httptest.NewRequest(http.MethodDelete, "/api/blocks", bytes.NewBufferString(`{"player_id":1,"blocked_id":2}`))
	rr := httptest.NewRecorder()
	handler.Remove(rr, req)
	assertErrorResponse(t, rr, http.StatusInternalServerError, "Internal server error")
}
