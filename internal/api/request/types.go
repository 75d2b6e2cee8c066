package request

// CreateGameRequest is the body for POST /games
type CreateGameRequest struct {
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// AddPlayerRequest is the body for POST /games/{game_id}/players
type AddPlayerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
