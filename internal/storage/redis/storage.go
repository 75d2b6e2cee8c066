package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/secretsanta-go/internal/model"
	"github.com/mcoot/secretsanta-go/internal/storage"
)

// Storage is a Redis-backed implementation of the store interface.
//
// Ids come from INCR sequences, entities are stored as JSON values, and SET
// indexes track membership for the list and cascade operations. Index entries
// can outlive expired values; reads tolerate the gap by skipping missing ids.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Game operations

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) (model.GameID, error) {
	seq, err := s.client.Incr(ctx, gameSeqKey()).Result()
	if err != nil {
		return 0, err
	}
	id := model.GameID(seq)

	stored := *game
	stored.ID = id

	data, err := json.Marshal(&stored)
	if err != nil {
		return 0, err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(id), data, s.cfg.GameTTL)
	pipe.SAdd(ctx, gamesIndexKey(), int64(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	ids, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		game, err := s.GetGame(ctx, model.GameID(id))
		if errors.Is(err, model.ErrGameNotFound) {
			// Index entry outlived an expired value
			continue
		}
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) (bool, error) {
	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, gameKey(id))
	pipe.SRem(ctx, gamesIndexKey(), int64(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) (model.PlayerID, error) {
	seq, err := s.client.Incr(ctx, playerSeqKey()).Result()
	if err != nil {
		return 0, err
	}
	id := model.PlayerID(seq)

	stored := *player
	stored.ID = id

	data, err := json.Marshal(&stored)
	if err != nil {
		return 0, err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(id), data, s.cfg.GameTTL)
	pipe.SAdd(ctx, playersIndexKey(), int64(id))
	pipe.SAdd(ctx, playersForGameIndexKey(stored.GameID), int64(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.listPlayersFromIndex(ctx, playersIndexKey())
}

func (s *Storage) ListPlayersByGame(ctx context.Context, gameID model.GameID) ([]*model.Player, error) {
	return s.listPlayersFromIndex(ctx, playersForGameIndexKey(gameID))
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) (bool, error) {
	// The per-game index entry needs the player's game id
	player, err := s.GetPlayer(ctx, id)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	pipe := s.client.Pipeline()
	del := pipe.Del(ctx, playerKey(id))
	pipe.SRem(ctx, playersIndexKey(), int64(id))
	pipe.SRem(ctx, playersForGameIndexKey(player.GameID), int64(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

func (s *Storage) DeletePlayersByGame(ctx context.Context, gameID model.GameID) (int, error) {
	ids, err := s.client.SMembers(ctx, playersForGameIndexKey(gameID)).Result()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	dels := make([]*redis.IntCmd, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		dels = append(dels, pipe.Del(ctx, playerKey(model.PlayerID(id))))
		pipe.SRem(ctx, playersIndexKey(), id)
	}
	pipe.Del(ctx, playersForGameIndexKey(gameID))
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	removed := 0
	for _, del := range dels {
		removed += int(del.Val())
	}
	return removed, nil
}

func (s *Storage) listPlayersFromIndex(ctx context.Context, indexKey string) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if errors.Is(err, model.ErrPlayerNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}
