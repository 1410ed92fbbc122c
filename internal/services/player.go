package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/playerdex/socialgraph/internal/models"
)

// ErrPlayerNotFound is returned when a player id does not resolve to a row,
// including when an insert into friendship or block trips the foreign key.
var ErrPlayerNotFound = errors.New("player not found")

type PlayerService struct {
	db DBConn
}

func NewPlayerService(db DBConn) *PlayerService {
	return &PlayerService{db: db}
}

// GetOrCreate returns the player for a Discord id, creating the row on
// first sight.
func (s *PlayerService) GetOrCreate(ctx context.Context, discordID int64) (*models.Player, error) {
	player := &models.Player{}
	// The no-op update makes RETURNING yield the row on conflict too.
	err := s.db.QueryRow(ctx,
		`INSERT INTO player (discord_id)
		 VALUES ($1)
		 ON CONFLICT (discord_id) DO UPDATE SET discord_id = EXCLUDED.discord_id
		 RETURNING id, discord_id, created_at`,
		discordID,
	).Scan(&player.ID, &player.DiscordID, &player.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	return player, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	player := &models.Player{}
	err := s.db.QueryRow(ctx,
		"SELECT id, discord_id, created_at FROM player WHERE id = $1",
		id,
	).Scan(&player.ID, &player.DiscordID, &player.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}

	return player, nil
}

// Delete removes a player. Every friendship and block row mentioning the
// player goes with it in the same statement via ON DELETE CASCADE.
func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	result, err := s.db.Exec(ctx, "DELETE FROM player WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
