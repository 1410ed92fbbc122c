package models

import "time"

// Player is the identity row the relationship tables reference. Its
// lifecycle is owned here only as far as the cascade semantics require:
// deleting a player deletes every friendship and block mentioning it.
type Player struct {
	ID        int64     `json:"id"`
	DiscordID int64     `json:"discord_id"`
	CreatedAt time.Time `json:"created_at"`
}
