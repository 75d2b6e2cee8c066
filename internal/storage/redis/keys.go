package redis

import (
	"fmt"

	"github.com/mcoot/secretsanta-go/internal/model"
)

// Key prefix for all session data
const keyPrefix = "santa"

// gameSeqKey returns the Redis key for the game id sequence
func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:game", keyPrefix)
}

// playerSeqKey returns the Redis key for the player id sequence
func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game ids
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// playersIndexKey returns the Redis key for the SET of all player ids
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playersForGameIndexKey returns the Redis key for the SET of player ids in a game
func playersForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:players_for_game:%d", keyPrefix, gameID)
}
