package models

import "time"

// Friendship is a bidirectional link between two players. The row stores
// the pair in creation order; lookups always match either order.
type Friendship struct {
	ID      int64     `json:"id"`
	Player1 int64     `json:"player1"`
	Player2 int64     `json:"player2"`
	Since   time.Time `json:"since"`
}

// Friend is a friendship viewed from one player's side: the other player
// of the pair plus when the link was made.
type Friend struct {
	FriendshipID    int64     `json:"friendship_id"`
	PlayerID        int64     `json:"player_id"`
	PlayerDiscordID int64     `json:"player_discord_id"`
	Since           time.Time `json:"since"`
}
