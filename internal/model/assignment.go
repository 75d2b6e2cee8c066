package model

// Pair is a single gift-giving assignment: Giver buys for Receiver.
type Pair struct {
	Giver    Player
	Receiver Player
}

// Assignment is the full set of pairs produced by a draw. The pairs form a
// single cycle covering every rostered player, so each player appears exactly
// once as a giver and exactly once as a receiver.
type Assignment []Pair
