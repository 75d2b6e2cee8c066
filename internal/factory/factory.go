package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/secretsanta-go/internal/dependencies/clock"
	"github.com/mcoot/secretsanta-go/internal/dependencies/random"
	"github.com/mcoot/secretsanta-go/internal/services/assignment"
	"github.com/mcoot/secretsanta-go/internal/services/credentials"
	"github.com/mcoot/secretsanta-go/internal/services/session"
	"github.com/mcoot/secretsanta-go/internal/storage"
	"github.com/mcoot/secretsanta-go/internal/storage/memory"
	redisstorage "github.com/mcoot/secretsanta-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Credentials       *credentials.Service
	AssignmentEngine  *assignment.Engine
	SessionController *session.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	creds := credentials.New(store, rnd)
	engine := assignment.New(rnd)
	controller := session.NewController(store, creds, engine, clk, logger)

	return &App{
		Store:             store,
		Clock:             clk,
		Random:            rnd,
		Credentials:       creds,
		AssignmentEngine:  engine,
		SessionController: controller,
	}
}
