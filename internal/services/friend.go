package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/playerdex/socialgraph/internal/models"
)

var (
	ErrCannotFriendSelf = errors.New("cannot friend yourself")
	ErrFriendshipExists = errors.New("players are already friends")
	ErrPlayerBlocked    = errors.New("a block exists between these players")
)

type FriendService struct {
	db DBConn
}

func NewFriendService(db DBConn) *FriendService {
	return &FriendService{db: db}
}

// Befriend creates a friendship between two players. The pair is checked
// unordered, so a reciprocal row is refused even though the schema itself
// does not prevent one.
func (s *FriendService) Befriend(ctx context.Context, playerID, otherID int64) (*models.Friendship, error) {
	if playerID == otherID {
		return nil, ErrCannotFriendSelf
	}

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
		return nil, fmt.Errorf("checking block status: %w", err)
	}
	if blocked {
		return nil, ErrPlayerBlocked
	}

	var exists bool
	err = s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM friendship
			WHERE (player1 = $1 AND player2 = $2)
			   OR (player1 = $2 AND player2 = $1)
		)`,
		playerID, otherID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking friendship existence: %w", err)
	}
	if exists {
		return nil, ErrFriendshipExists
	}

	friendship := &models.Friendship{}
	err = s.db.QueryRow(ctx,
		`INSERT INTO friendship (player1, player2)
		 VALUES ($1, $2)
		 RETURNING id, player1, player2, since`,
		playerID, otherID,
	).Scan(&friendship.ID, &friendship.Player1, &friendship.Player2, &friendship.Since)
	if isForeignKeyViolation(err) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("creating friendship: %w", err)
	}

	return friendship, nil
}

// Unfriend deletes the friendship between two players, matching the pair
// in either order. It reports whether any row was deleted.
func (s *FriendService) Unfriend(ctx context.Context, playerID, otherID int64) (bool, error) {
	result, err := s.db.Exec(ctx,
		`DELETE FROM friendship
		 WHERE (player1 = $1 AND player2 = $2)
		    OR (player1 = $2 AND player2 = $1)`,
		playerID, otherID,
	)
	if err != nil {
		return false, fmt.Errorf("removing friendship: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// RemoveFriendship deletes a friendship by row id. It reports whether the
// row existed.
func (s *FriendService) RemoveFriendship(ctx context.Context, friendshipID int64) (bool, error) {
	result, err := s.db.Exec(ctx,
		"DELETE FROM friendship WHERE id = $1",
		friendshipID,
	)
	if err != nil {
		return false, fmt.Errorf("removing friendship by id: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListFriends returns every friendship mentioning the player, resolved to
// the other player of each pair.
func (s *FriendService) ListFriends(ctx context.Context, playerID int64) ([]models.Friend, error) {
	rows, err := s.db.Query(ctx,
		`SELECT f.id,
		        CASE WHEN f.player1 = $1 THEN f.player2 ELSE f.player1 END,
		        p.discord_id,
		        f.since
		 FROM friendship f
		 JOIN player p ON p.id = CASE WHEN f.player1 = $1 THEN f.player2 ELSE f.player1 END
		 WHERE f.player1 = $1 OR f.player2 = $1
		 ORDER BY f.since DESC, f.id DESC`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.FriendshipID, &f.PlayerID, &f.PlayerDiscordID, &f.Since); err != nil {
			return nil, fmt.Errorf("scanning friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}

	if friends == nil {
		friends = []models.Friend{}
	}

	return friends, nil
}

func (s *FriendService) IsFriend(ctx context.Context, playerID, otherID int64) (bool, error) {
	var isFriend bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM friendship
			WHERE (player1 = $1 AND player2 = $2)
			   OR (player1 = $2 AND player2 = $1)
		)`,
		playerID, otherID,
	).Scan(&isFriend)
	if err != nil {
		return false, fmt.Errorf("checking friendship: %w", err)
	}
	return isFriend, nil
}
