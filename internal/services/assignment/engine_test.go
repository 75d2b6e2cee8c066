package assignment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/secretsanta-go/internal/dependencies/mocks"
	"github.com/mcoot/secretsanta-go/internal/dependencies/random"
	"github.com/mcoot/secretsanta-go/internal/model"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = New(random.New())
}

func makeRoster(n int) []*model.Player {
	roster := make([]*model.Player, n)
	for i := range roster {
		roster[i] = &model.Player{
			ID:     model.PlayerID(i + 1),
			Name:   fmt.Sprintf("player-%d", i+1),
			GameID: 1,
		}
	}
	return roster
}

// Precondition tests

func (s *EngineSuite) TestEmptyRosterFailsInsufficient() {
	_, err := s.engine.Generate(nil)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestRosterOfOneFailsInsufficient() {
	_, err := s.engine.Generate(makeRoster(1))
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestRosterOfTwoFailsInsufficient() {
	_, err := s.engine.Generate(makeRoster(2))
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *EngineSuite) TestRosterOfThreeFailsUneven() {
	// The size check passes at 3, so the odd check reports the failure
	_, err := s.engine.Generate(makeRoster(3))
	s.ErrorIs(err, model.ErrUnevenRoster)
}

func (s *EngineSuite) TestOddRosterFailsUneven() {
	_, err := s.engine.Generate(makeRoster(5))
	s.ErrorIs(err, model.ErrUnevenRoster)

	_, err = s.engine.Generate(makeRoster(7))
	s.ErrorIs(err, model.ErrUnevenRoster)
}

// Assignment validity tests

func (s *EngineSuite) TestFourPlayerDrawsFormSingleCycle() {
	roster := makeRoster(4)

	for i := 0; i < 1000; i++ {
		pairs, err := s.engine.Generate(roster)
		s.Require().NoError(err)
		s.Require().Len(pairs, 4)
		assertSingleCycle(s, pairs, roster)
	}
}

func (s *EngineSuite) TestLargeRosterIsValid() {
	roster := makeRoster(20)

	pairs, err := s.engine.Generate(roster)
	s.Require().NoError(err)
	s.Require().Len(pairs, 20)
	assertSingleCycle(s, pairs, roster)
}

func (s *EngineSuite) TestGenerateDoesNotMutateRoster() {
	roster := makeRoster(6)

	_, err := s.engine.Generate(roster)
	s.Require().NoError(err)

	for i, p := range roster {
		s.Equal(model.PlayerID(i+1), p.ID)
	}
}

func (s *EngineSuite) TestPairingFollowsShuffledOrder() {
	// An identity shuffle keeps roster order, so pairing is deterministic
	engine := New(mocks.NewMockRandom())
	roster := makeRoster(4)

	pairs, err := engine.Generate(roster)
	s.Require().NoError(err)
	s.Require().Len(pairs, 4)

	s.Equal(model.PlayerID(1), pairs[0].Giver.ID)
	s.Equal(model.PlayerID(2), pairs[0].Receiver.ID)
	s.Equal(model.PlayerID(4), pairs[3].Giver.ID)
	s.Equal(model.PlayerID(1), pairs[3].Receiver.ID)
}

// assertSingleCycle checks the pairs cover every player exactly once as giver
// and receiver, pair nobody with themselves, and form one cycle rather than
// disjoint sub-cycles.
func assertSingleCycle(s *EngineSuite, pairs model.Assignment, roster []*model.Player) {
	s.T().Helper()

	givers := make(map[model.PlayerID]int)
	receivers := make(map[model.PlayerID]int)
	next := make(map[model.PlayerID]model.PlayerID)

	for _, pair := range pairs {
		s.Require().NotEqual(pair.Giver.ID, pair.Receiver.ID, "self-assignment")
		givers[pair.Giver.ID]++
		receivers[pair.Receiver.ID]++
		next[pair.Giver.ID] = pair.Receiver.ID
	}

	for _, p := range roster {
		s.Require().Equal(1, givers[p.ID], "player %d gives %d times", p.ID, givers[p.ID])
		s.Require().Equal(1, receivers[p.ID], "player %d receives %d times", p.ID, receivers[p.ID])
	}

	// Walk the cycle from the first giver; it must take len(roster) hops to
	// return to the start
	start := pairs[0].Giver.ID
	current := start
	for i := 0; i < len(roster); i++ {
		current = next[current]
	}
	s.Require().Equal(start, current, "pairs do not close into a cycle")

	visited := make(map[model.PlayerID]bool)
	current = start
	for !visited[current] {
		visited[current] = true
		current = next[current]
	}
	s.Require().Len(visited, len(roster), "pairs form disjoint sub-cycles")
}
