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

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	controller *session.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *session.Controller) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// Add handles POST /api/v1/games/{game_id}/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.controller.AddPlayer(r.Context(), gameID, req.Name, req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// ListForGame handles GET /api/v1/games/{game_id}/players
func (h *PlayerHandler) ListForGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	players, err := h.controller.ListPlayers(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// ListAll handles GET /api/v1/players
func (h *PlayerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	players, err := h.controller.ListAllPlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Remove handles DELETE /api/v1/games/{game_id}/players/{player_id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	playerID, err := playerIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.controller.RemovePlayer(r.Context(), gameID, playerID, r.Header.Get(OwnerKeyHeader)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// playerIDFromPath parses the {player_id} path variable
func playerIDFromPath(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["player_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.NewInvalidRequestError("player_id must be an integer")
	}
	return model.PlayerID(id), nil
}
