package credentials

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/mcoot/secretsanta-go/internal/dependencies/random"
	"github.com/mcoot/secretsanta-go/internal/model"
	"github.com/mcoot/secretsanta-go/internal/storage"
)

const (
	// OwnerKeyMinLength and OwnerKeyMaxLength bound the generated key length
	OwnerKeyMinLength = 10
	OwnerKeyMaxLength = 20

	// OwnerKeyAlphabet is the character set for generated owner keys
	OwnerKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Service generates and validates the two secrets that gate game mutation:
// the owner key (revealed once, at creation) and the join password.
//
// Validation deliberately does not distinguish a missing game from a wrong
// secret; both come back false.
type Service struct {
	store  storage.Store
	random random.Random
}

// New creates a new credentials service
func New(store storage.Store, random random.Random) *Service {
	return &Service{
		store:  store,
		random: random,
	}
}

// GenerateOwnerKey produces a fresh owner key: length uniform in
// [OwnerKeyMinLength, OwnerKeyMaxLength], characters uniform over the
// alphanumeric alphabet.
func (s *Service) GenerateOwnerKey() string {
	length := s.random.IntRange(OwnerKeyMinLength, OwnerKeyMaxLength)
	return s.random.String(length, OwnerKeyAlphabet)
}

// ValidateOwnerKey reports whether the candidate matches the stored owner key
// for the game. A missing game validates as false rather than an error.
func (s *Service) ValidateOwnerKey(ctx context.Context, gameID model.GameID, candidate string) (bool, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if errors.Is(err, model.ErrGameNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return secretsEqual(game.OwnerKey, candidate), nil
}

// ValidatePassword reports whether the candidate matches the game's join
// password. A game created without a password stores the empty string, so
// only an empty candidate validates.
func (s *Service) ValidatePassword(ctx context.Context, gameID model.GameID, candidate string) (bool, error) {
	game, err := s.store.GetGame(ctx, gameID)
	if errors.Is(err, model.ErrGameNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return secretsEqual(game.Password, candidate), nil
}

// secretsEqual compares two secrets byte-exactly in constant time
func secretsEqual(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
