package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/playerdex/socialgraph/internal/models"
)

var (
	ErrCannotBlockSelf = errors.New("cannot block yourself")
	ErrBlockExists     = errors.New("player is already blocked")
	ErrBlockNotFound   = errors.New("block not found")
)

type BlockService struct {
	db DB
}

func NewBlockService(db DB) *BlockService {
	return &BlockService{db: db}
}

// Block creates a directed block and removes any existing friendship
// between the pair in the same transaction.
func (s *BlockService) Block(ctx context.Context, blockerID, blockedID int64) (*models.Block, error) {
	if blockerID == blockedID {
		return nil, ErrCannotBlockSelf
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin block transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	// The schema carries no uniqueness constraint on the pair, so the
	// duplicate check is explicit.
	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM block WHERE player1 = $1 AND player2 = $2)",
		blockerID, blockedID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking block existence: %w", err)
	}
	if exists {
		return nil, ErrBlockExists
	}

	block := &models.Block{}
	err = tx.QueryRow(ctx,
		`INSERT INTO block (player1, player2)
		 VALUES ($1, $2)
		 RETURNING id, player1, player2`,
		blockerID, blockedID,
	).Scan(&block.ID, &block.Player1, &block.Player2)
	if isForeignKeyViolation(err) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("creating block: %w", err)
	}

	_, err = tx.Exec(ctx,
		`DELETE FROM friendship
		 WHERE (player1 = $1 AND player2 = $2)
		    OR (player1 = $2 AND player2 = $1)`,
		blockerID, blockedID,
	)
	if err != nil {
		return nil, fmt.Errorf("removing friendship: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit block: %w", err)
	}
	committed = true
	return block, nil
}

// Unblock deletes the directed block row only: unblocking A->B leaves any
// B->A block in place. It reports whether the row existed.
func (s *BlockService) Unblock(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	result, err := s.db.Exec(ctx,
		"DELETE FROM block WHERE player1 = $1 AND player2 = $2",
		blockerID, blockedID,
	)
	if err != nil {
		return false, fmt.Errorf("deleting block: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListBlocked returns the players blocked by blockerID.
func (s *BlockService) ListBlocked(ctx context.Context, blockerID int64) ([]models.BlockedPlayer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT b.id, b.player2, p.discord_id
		 FROM block b
		 JOIN player p ON p.id = b.player2
		 WHERE b.player1 = $1
		 ORDER BY b.id`,
		blockerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing blocked players: %w", err)
	}
	defer rows.Close()

	var blocked []models.BlockedPlayer
	for rows.Next() {
		var b models.BlockedPlayer
		if err := rows.Scan(&b.BlockID, &b.PlayerID, &b.PlayerDiscordID); err != nil {
			return nil, fmt.Errorf("scanning blocked player: %w", err)
		}
		blocked = append(blocked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing blocked players: %w", err)
	}

	if blocked == nil {
		blocked = []models.BlockedPlayer{}
	}
	return blocked, nil
}

// IsBlocked reports whether a block exists between the two players in
// either direction, mirroring how befriending is gated.
func (s *BlockService) IsBlocked(ctx context.Context, playerID, otherID int64) (bool, error) {
	var blocked bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM block
			WHERE (player1 = $1 AND player2 = $2)
			   OR (player1 = $2 AND player2 = $1)
		)`,
		playerID, otherID,
	).Scan(&blocked)
	if err != nil {
		return false, fmt.Errorf("checking block status: %w", err)
	}
	return blocked, nil
}
