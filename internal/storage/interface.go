package storage

import (
	"context"

	"github.com/mcoot/secretsanta-go/internal/model"
)

// Store defines the interface for game and player persistence.
//
// Entities are immutable once created: there is no update operation, only
// create, read and delete. Creates assign and return the new id. Deletes are
// idempotent but report whether a row was actually removed so callers can
// audit the outcome.
type Store interface {
	// Game operations
	CreateGame(ctx context.Context, game *model.Game) (model.GameID, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) (bool, error)

	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	ListPlayersByGame(ctx context.Context, gameID model.GameID) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) (bool, error)

	// DeletePlayersByGame removes every player belonging to the game and
	// returns the number removed. Used for cascade deletes.
	DeletePlayersByGame(ctx context.Context, gameID model.GameID) (int, error)
}
