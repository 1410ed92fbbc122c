package models

// Block is a directed suppression: player1 blocked player2. (A,B) and
// (B,A) are distinct rows with different meaning.
type Block struct {
	ID      int64 `json:"id"`
	Player1 int64 `json:"player1"`
	Player2 int64 `json:"player2"`
}

// BlockedPlayer is a block viewed from the blocker's side.
type BlockedPlayer struct {
	BlockID         int64 `json:"block_id"`
	PlayerID        int64 `json:"player_id"`
	PlayerDiscordID int64 `json:"player_discord_id"`
}
