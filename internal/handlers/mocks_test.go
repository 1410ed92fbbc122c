package handlers

import (
	"context"

	"github.com/playerdex/socialgraph/internal/models"
)

type mockPlayerService struct {
	GetOrCreateFunc func(ctx context.Context, discordID int64) (*models.Player, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*models.Player, error)
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *mockPlayerService) GetOrCreate(ctx context.Context, discordID int64) (*models.Player, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, discordID)
	}
	return &models.Player{}, nil
}

func (m *mockPlayerService) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Player{ID: id}, nil
}

func (m *mockPlayerService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockFriendService struct {
	BefriendFunc         func(ctx context.Context, playerID, friendID int64) (*models.Friendship, error)
	UnfriendFunc         func(ctx context.Context, playerID, friendID int64) (bool, error)
	RemoveFriendshipFunc func(ctx context.Context, friendshipID int64) (bool, error)
	ListFriendsFunc      func(ctx context.Context, playerID int64) ([]models.Friend, error)
	IsFriendFunc         func(ctx context.Context, playerID, otherID int64) (bool, error)
}

func (m *mockFriendService) Befriend(ctx context.Context, playerID, friendID int64) (*models.Friendship, error) {
	if m.BefriendFunc != nil {
		return m.BefriendFunc(ctx, playerID, friendID)
	}
	return &models.Friendship{}, nil
}

func (m *mockFriendService) Unfriend(ctx context.Context, playerID, friendID int64) (bool, error) {
	if m.UnfriendFunc != nil {
		return m.UnfriendFunc(ctx, playerID, friendID)
	}
	return true, nil
}

func (m *mockFriendService) RemoveFriendship(ctx context.Context, friendshipID int64) (bool, error) {
	if m.RemoveFriendshipFunc != nil {
		return m.RemoveFriendshipFunc(ctx, friendshipID)
	}
	return true, nil
}

func (m *mockFriendService) ListFriends(ctx context.Context, playerID int64) ([]models.Friend, error) {
	if m.ListFriendsFunc != nil {
		return m.ListFriendsFunc(ctx, playerID)
	}
	return []models.Friend{}, nil
}

func (m *mockFriendService) IsFriend(ctx context.Context, playerID, otherID int64) (bool, error) {
	if m.IsFriendFunc != nil {
		return m.IsFriendFunc(ctx, playerID, otherID)
	}
	return false, nil
}

type mockBlockService struct {
	BlockFunc       func(ctx context.Context, blockerID, blockedID int64) (*models.Block, error)
	UnblockFunc     func(ctx context.Context, blockerID, blockedID int64) (bool, error)
	ListBlockedFunc func(ctx context.Context, blockerID int64) ([]models.BlockedPlayer, error)
	IsBlockedFunc   func(ctx context.Context, playerID, otherID int64) (bool, error)
}

func (m *mockBlockService) Block(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
	if m.BlockFunc != nil {
		return m.BlockFunc(ctx, blockerID, blockedID)
	}
	return &models.Block{}, nil
}

func (m *mockBlockService) Unblock(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	if m.UnblockFunc != nil {
		return m.UnblockFunc(ctx, blockerID, blockedID)
	}
	return true, nil
}

func (m *mockBlockService) ListBlocked(ctx context.Context, blockerID int64) ([]models.BlockedPlayer, error) {
	if m.ListBlockedFunc != nil {
		return m.ListBlockedFunc(ctx, blockerID)
	}
	return []models.BlockedPlayer{}, nil
}

func (m *mockBlockService) IsBlocked(ctx context.Context, playerID, otherID int64) (bool, error) {
	if m.IsBlockedFunc != nil {
		return m.IsBlockedFunc(ctx, playerID, otherID)
	}
	return false, nil
}
