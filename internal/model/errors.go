package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrEmptyGameName = errors.New("game name must not be empty")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Credential errors
	ErrInvalidOwnerKey = errors.New("invalid owner key")
	ErrInvalidPassword = errors.New("invalid password")

	// Draw errors
	ErrInsufficientPlayers = errors.New("not enough players to draw")
	ErrUnevenRoster        = errors.New("roster size must be even")
)
