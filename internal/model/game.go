package model

import "time"

// GameID uniquely identifies a game. IDs are assigned by the store at
// creation time and are never reused within a store instance.
type GameID int64

// Game represents a single Secret Santa session. Games are immutable after
// creation; the only lifecycle operation is deletion (explicit, or as the
// terminal side effect of a draw).
type Game struct {
	ID   GameID
	Name string

	// OwnerKey is the capability token proving the creator's right to
	// delete the game, remove players, or trigger a draw. It is revealed
	// exactly once, in the creation response.
	OwnerKey string

	// Password is the shared secret required to join the game as a player.
	// Empty if the game was created without one, in which case only an
	// empty-string candidate validates.
	Password string

	CreatedAt time.Time
}
