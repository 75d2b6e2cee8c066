package assignment

import (
	"github.com/mcoot/secretsanta-go/internal/dependencies/random"
	"github.com/mcoot/secretsanta-go/internal/model"
)

// MinRosterSize is the smallest roster the engine accepts. Combined with the
// even-size rule the smallest drawable roster is 4.
const MinRosterSize = 3

// Engine computes gift-giving assignments. It is pure: it reads nothing from
// storage and its only inputs are the roster and the random source.
type Engine struct {
	random random.Random
}

// New creates a new assignment engine
func New(random random.Random) *Engine {
	return &Engine{random: random}
}

// Generate produces an assignment for the roster: a uniform shuffle followed
// by cyclic adjacent pairing, so every player gives to the next shuffled
// player and the last wraps around to the first. The single cycle guarantees
// nobody draws themselves and everybody gives and receives exactly once.
//
// Rosters smaller than MinRosterSize fail with ErrInsufficientPlayers.
// Odd-sized rosters fail with ErrUnevenRoster; the size check runs first, so
// a roster of exactly 3 reports the uneven error.
func (e *Engine) Generate(roster []*model.Player) (model.Assignment, error) {
	if len(roster) < MinRosterSize {
		return nil, model.ErrInsufficientPlayers
	}
	if len(roster)%2 != 0 {
		return nil, model.ErrUnevenRoster
	}

	shuffled := make([]*model.Player, len(roster))
	copy(shuffled, roster)
	e.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pairs := make(model.Assignment, len(shuffled))
	for i, giver := range shuffled {
		receiver := shuffled[(i+1)%len(shuffled)]
		pairs[i] = model.Pair{Giver: *giver, Receiver: *receiver}
	}
	return pairs, nil
}
