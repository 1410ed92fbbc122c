package services

import (
	"context"

	"github.com/playerdex/socialgraph/internal/models"
)

// PlayerServiceInterface defines the contract for player registry operations.
type PlayerServiceInterface interface {
	GetOrCreate(ctx context.Context, discordID int64) (*models.Player, error)
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	Delete(ctx context.Context, id int64) error
}

// FriendServiceInterface defines the contract for friendship operations.
type FriendServiceInterface interface {
	Befriend(ctx context.Context, playerID, otherID int64) (*models.Friendship, error)
	Unfriend(ctx context.Context, playerID, otherID int64) (bool, error)
	RemoveFriendship(ctx context.Context, friendshipID int64) (bool, error)
	ListFriends(ctx context.Context, playerID int64) ([]models.Friend, error)
	IsFriend(ctx context.Context, playerID, otherID int64) (bool, error)
}

// BlockServiceInterface defines the contract for blocking operations.
type BlockServiceInterface interface {
	Block(ctx context.Context, blockerID, blockedID int64) (*models.Block, error)
	Unblock(ctx context.Context, blockerID, blockedID int64) (bool, error)
	ListBlocked(ctx context.Context, blockerID int64) ([]models.BlockedPlayer, error)
	IsBlocked(ctx context.Context, playerID, otherID int64) (bool, error)
}
