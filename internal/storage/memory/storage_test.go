package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/secretsanta-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) createGame(name string) model.GameID {
	id, err := s.storage.CreateGame(s.ctx, &model.Game{
		Name:      name,
		OwnerKey:  "key-" + name,
		CreatedAt: time.Now(),
	})
	s.Require().NoError(err)
	return id
}

func (s *StorageSuite) createPlayer(name string, gameID model.GameID) model.PlayerID {
	id, err := s.storage.CreatePlayer(s.ctx, &model.Player{
		Name:   name,
		Email:  name + "@example.com",
		GameID: gameID,
	})
	s.Require().NoError(err)
	return id
}

// Game tests

func (s *StorageSuite) TestCreateGameAssignsSequentialIDs() {
	first := s.createGame("first")
	second := s.createGame("second")

	s.Equal(model.GameID(1), first)
	s.Equal(model.GameID(2), second)
}

func (s *StorageSuite) TestGetGameReturnsStoredFields() {
	id := s.createGame("office")

	game, err := s.storage.GetGame(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("office", game.Name)
	s.Equal("key-office", game.OwnerKey)
	s.Equal(id, game.ID)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, 42)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesOrderedByID() {
	s.createGame("a")
	s.createGame("b")
	s.createGame("c")

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal("a", games[0].Name)
	s.Equal("c", games[2].Name)
}

func (s *StorageSuite) TestDeleteGameReportsRemoval() {
	id := s.createGame("doomed")

	removed, err := s.storage.DeleteGame(s.ctx, id)
	s.Require().NoError(err)
	s.True(removed)

	_, err = s.storage.GetGame(s.ctx, id)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGameIdempotent() {
	removed, err := s.storage.DeleteGame(s.ctx, 999)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *StorageSuite) TestStoredGameIsIsolatedFromCallerMutation() {
	game := &model.Game{Name: "original", OwnerKey: "k"}
	id, err := s.storage.CreateGame(s.ctx, game)
	s.Require().NoError(err)

	game.Name = "mutated"

	stored, err := s.storage.GetGame(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("original", stored.Name)
}

// Player tests

func (s *StorageSuite) TestCreatePlayerAssignsSequentialIDs() {
	gameID := s.createGame("g")

	first := s.createPlayer("alice", gameID)
	second := s.createPlayer("bob", gameID)

	s.Equal(model.PlayerID(1), first)
	s.Equal(model.PlayerID(2), second)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersByGameFiltersOtherGames() {
	gameA := s.createGame("a")
	gameB := s.createGame("b")
	s.createPlayer("alice", gameA)
	s.createPlayer("bob", gameA)
	s.createPlayer("carol", gameB)

	players, err := s.storage.ListPlayersByGame(s.ctx, gameA)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("alice", players[0].Name)
	s.Equal("bob", players[1].Name)
}

func (s *StorageSuite) TestListPlayersByGameUnknownGameIsEmpty() {
	players, err := s.storage.ListPlayersByGame(s.ctx, 42)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersAcrossGames() {
	gameA := s.createGame("a")
	gameB := s.createGame("b")
	s.createPlayer("alice", gameA)
	s.createPlayer("bob", gameB)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestDeletePlayerReportsRemoval() {
	gameID := s.createGame("g")
	playerID := s.createPlayer("alice", gameID)

	removed, err := s.storage.DeletePlayer(s.ctx, playerID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.storage.DeletePlayer(s.ctx, playerID)
	s.Require().NoError(err)
	s.False(removed)
}

func (s *StorageSuite) TestDeletePlayersByGameCascades() {
	gameA := s.createGame("a")
	gameB := s.createGame("b")
	s.createPlayer("alice", gameA)
	s.createPlayer("bob", gameA)
	s.createPlayer("carol", gameB)

	removed, err := s.storage.DeletePlayersByGame(s.ctx, gameA)
	s.Require().NoError(err)
	s.Equal(2, removed)

	players, err := s.storage.ListPlayersByGame(s.ctx, gameA)
	s.Require().NoError(err)
	s.Empty(players)

	// Other games untouched
	players, err = s.storage.ListPlayersByGame(s.ctx, gameB)
	s.Require().NoError(err)
	s.Len(players, 1)
}
