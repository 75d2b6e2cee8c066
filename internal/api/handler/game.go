package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/secretsanta-go/internal/api/apierr"
	"github.com/mcoot/secretsanta-go/internal/api/request"
	"github.com/mcoot/secretsanta-go/internal/api/response"
	"github.com/mcoot/secretsanta-go/internal/model"
	"github.com/mcoot/secretsanta-go/internal/services/session"
)

// OwnerKeyHeader carries the owner key on guarded operations
const OwnerKeyHeader = "X-Owner-Key"

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *session.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *session.Controller) *GameHandler {
	return &GameHandler{controller: controller}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.controller.CreateGame(r.Context(), req.Name, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreatedGameFromModel(game))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.controller.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	game, err := h.controller.GetGame(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.controller.DeleteGame(r.Context(), gameID, r.Header.Get(OwnerKeyHeader)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Draw handles POST /api/v1/games/{game_id}/draw
func (h *GameHandler) Draw(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	pairs, err := h.controller.Draw(r.Context(), gameID, r.Header.Get(OwnerKeyHeader))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentFromModel(pairs))
}

// gameIDFromPath parses the {game_id} path variable
func gameIDFromPath(r *http.Request) (model.GameID, error) {
	raw := mux.Vars(r)["game_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.NewInvalidRequestError("game_id must be an integer")
	}
	return model.GameID(id), nil
}
