package session

import (
	"context"
	"log/slog"

	"github.com/mcoot/secretsanta-go/internal/dependencies/clock"
	"github.com/mcoot/secretsanta-go/internal/model"
	"github.com/mcoot/secretsanta-go/internal/services/assignment"
	"github.com/mcoot/secretsanta-go/internal/services/credentials"
	"github.com/mcoot/secretsanta-go/internal/storage"
)

// Controller orchestrates the game lifecycle: create, register players,
// draw, teardown. Every mutation is gated on a credential check that
// short-circuits before the store is touched.
type Controller struct {
	store       storage.Store
	credentials *credentials.Service
	engine      *assignment.Engine
	clock       clock.Clock
	logger      *slog.Logger
}

// NewController creates a new session controller
func NewController(
	store storage.Store,
	credentials *credentials.Service,
	engine *assignment.Engine,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:       store,
		credentials: credentials,
		engine:      engine,
		clock:       clock,
		logger:      logger,
	}
}

// CreateGame creates a game and returns it with the generated owner key.
// This is the only moment the owner key is revealed.
func (c *Controller) CreateGame(ctx context.Context, name, password string) (*model.Game, error) {
	if name == "" {
		return nil, model.ErrEmptyGameName
	}

	game := &model.Game{
		Name:      name,
		OwnerKey:  c.credentials.GenerateOwnerKey(),
		Password:  password,
		CreatedAt: c.clock.Now(),
	}

	id, err := c.store.CreateGame(ctx, game)
	if err != nil {
		return nil, err
	}
	game.ID = id

	c.logger.Info("game created",
		slog.Int64("game_id", int64(id)),
		slog.String("name", name))

	return game, nil
}

// GetGame retrieves a game by id
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.store.GetGame(ctx, id)
}

// ListGames retrieves all games
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.store.ListGames(ctx)
}

// DeleteGame deletes a game and cascades to its players. Requires a valid
// owner key; on a failed check nothing is deleted.
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID, ownerKey string) error {
	ok, err := c.credentials.ValidateOwnerKey(ctx, id, ownerKey)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrInvalidOwnerKey
	}

	if err := c.teardown(ctx, id); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.Int64("game_id", int64(id)))
	return nil
}

// AddPlayer registers a player in a game. Requires the game's join password;
// on a failed check no player is created.
func (c *Controller) AddPlayer(ctx context.Context, gameID model.GameID, name, email, password string) (*model.Player, error) {
	ok, err := c.credentials.ValidatePassword(ctx, gameID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrInvalidPassword
	}

	player := &model.Player{
		Name:      name,
		Email:     email,
		GameID:    gameID,
		CreatedAt: c.clock.Now(),
	}

	id, err := c.store.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id

	c.logger.Info("player registered",
		slog.Int64("game_id", int64(gameID)),
		slog.Int64("player_id", int64(id)))

	return player, nil
}

// ListPlayers retrieves the players registered in a game. An unknown game
// yields an empty roster, matching the store's by-game lookup.
func (c *Controller) ListPlayers(ctx context.Context, gameID model.GameID) ([]*model.Player, error) {
	return c.store.ListPlayersByGame(ctx, gameID)
}

// ListAllPlayers retrieves every player across all games
func (c *Controller) ListAllPlayers(ctx context.Context) ([]*model.Player, error) {
	return c.store.ListPlayers(ctx)
}

// RemovePlayer removes a single player from a game. Requires a valid owner
// key; the player must belong to the named game.
func (c *Controller) RemovePlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID, ownerKey string) error {
	ok, err := c.credentials.ValidateOwnerKey(ctx, gameID, ownerKey)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrInvalidOwnerKey
	}

	player, err := c.store.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if player.GameID != gameID {
		// A key for one game must not remove players from another
		return model.ErrPlayerNotFound
	}

	if _, err := c.store.DeletePlayer(ctx, playerID); err != nil {
		return err
	}

	c.logger.Info("player removed",
		slog.Int64("game_id", int64(gameID)),
		slog.Int64("player_id", int64(playerID)))

	return nil
}

// Draw generates the gift-giving assignment for a game and finalizes it:
// once the pairs are computed the game and its players are torn down, fully,
// before the assignment is returned. A finalized game id no longer resolves.
func (c *Controller) Draw(ctx context.Context, gameID model.GameID, ownerKey string) (model.Assignment, error) {
	ok, err := c.credentials.ValidateOwnerKey(ctx, gameID, ownerKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrInvalidOwnerKey
	}

	roster, err := c.store.ListPlayersByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	pairs, err := c.engine.Generate(roster)
	if err != nil {
		return nil, err
	}

	if err := c.teardown(ctx, gameID); err != nil {
		return nil, err
	}

	c.logger.Info("draw complete",
		slog.Int64("game_id", int64(gameID)),
		slog.Int("pairs", len(pairs)))

	return pairs, nil
}

// teardown removes a game's players and then the game itself, sequenced so
// no residual rows remain once it returns.
func (c *Controller) teardown(ctx context.Context, gameID model.GameID) error {
	if _, err := c.store.DeletePlayersByGame(ctx, gameID); err != nil {
		return err
	}
	if _, err := c.store.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	return nil
}
