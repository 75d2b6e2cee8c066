package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/secretsanta-go/internal/api/handler"
	"github.com/mcoot/secretsanta-go/internal/api/middleware"
	"github.com/mcoot/secretsanta-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.SessionController)
	playerHandler := handler.NewPlayerHandler(cfg.SessionController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{game_id}/draw", gameHandler.Draw).Methods(http.MethodPost)

	// Player routes
	api.HandleFunc("/games/{game_id}/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/players", playerHandler.ListForGame).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/players/{player_id}", playerHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/players", playerHandler.ListAll).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
