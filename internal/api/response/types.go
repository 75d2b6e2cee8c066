package response

import (
	"time"

	"github.com/mcoot/secretsanta-go/internal/model"
)

// Game represents a game in API responses. Secrets are never included; the
// owner key appears only in CreatedGame.
type Game struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:        int64(g.ID),
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// CreatedGame is the creation response: the one place the owner key is shown
type CreatedGame struct {
	Game
	OwnerKey string `json:"owner_key"`
}

// CreatedGameFromModel converts a freshly created model.Game
func CreatedGameFromModel(g *model.Game) CreatedGame {
	return CreatedGame{
		Game:     GameFromModel(g),
		OwnerKey: g.OwnerKey,
	}
}

// Player represents a player in API responses
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	GameID    int64     `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        int64(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		GameID:    int64(p.GameID),
		CreatedAt: p.CreatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Pair is a single giver/receiver assignment
type Pair struct {
	Giver    Player `json:"giver"`
	Receiver Player `json:"receiver"`
}

// Assignment is the response for a completed draw
type Assignment struct {
	Pairs []Pair `json:"pairs"`
}

// AssignmentFromModel converts a model.Assignment
func AssignmentFromModel(a model.Assignment) Assignment {
	pairs := make([]Pair, len(a))
	for i, p := range a {
		giver := p.Giver
		receiver := p.Receiver
		pairs[i] = Pair{
			Giver:    PlayerFromModel(&giver),
			Receiver: PlayerFromModel(&receiver),
		}
	}
	return Assignment{Pairs: pairs}
}
