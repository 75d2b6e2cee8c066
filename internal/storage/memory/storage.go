package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/secretsanta-go/internal/model"
	"github.com/mcoot/secretsanta-go/internal/storage"
)

// Storage is an in-memory implementation of the store interface
type Storage struct {
	mu sync.RWMutex

	games   map[model.GameID]*model.Game
	players map[model.PlayerID]*model.Player

	nextGameID   model.GameID
	nextPlayerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:        make(map[model.GameID]*model.Game),
		players:      make(map[model.PlayerID]*model.Player),
		nextGameID:   1,
		nextPlayerID: 1,
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) (model.GameID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextGameID
	s.nextGameID++

	stored := *game
	stored.ID = id
	s.games[id] = &stored
	return id, nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		copied := *game
		games = append(games, &copied)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.games[id]
	delete(s.games, id)
	return ok, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPlayerID
	s.nextPlayerID++

	stored := *player
	stored.ID = id
	s.players[id] = &stored
	return id, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		copied := *player
		players = append(players, &copied)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) ListPlayersByGame(ctx context.Context, gameID model.GameID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0)
	for _, player := range s.players {
		if player.GameID == gameID {
			copied := *player
			players = append(players, &copied)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.players[id]
	delete(s.players, id)
	return ok, nil
}

func (s *Storage) DeletePlayersByGame(ctx context.Context, gameID model.GameID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, player := range s.players {
		if player.GameID == gameID {
			delete(s.players, id)
			removed++
		}
	}
	return removed, nil
}
