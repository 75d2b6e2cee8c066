package model

import "time"

// PlayerID uniquely identifies a player across all games
type PlayerID int64

// Player represents a participant registered in a game. A player belongs to
// exactly one game and cannot outlive it.
type Player struct {
	ID     PlayerID
	Name   string
	Email  string
	GameID GameID

	CreatedAt time.Time
}
