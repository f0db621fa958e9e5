package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockdrop/internal/dependencies/mocks"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/bot"
	"github.com/mcoot/blockdrop/internal/testutil"
)

// fakePlayer records commands and reports a fixed snapshot
type fakePlayer struct {
	snapshot model.Snapshot
	commands []model.Command
	accept   bool
}

func (p *fakePlayer) Snapshot() model.Snapshot { return p.snapshot }

func (p *fakePlayer) ApplyCommand(cmd model.Command) bool {
	p.commands = append(p.commands, cmd)
	return p.accept
}

type ServiceSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	service    *bot.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.service = bot.NewService(s.mockRandom, testutil.NopLogger())
}

func (s *ServiceSuite) TestStrategyLookup() {
	for _, name := range model.ValidBotStrategies() {
		strategy, err := s.service.Strategy(name)
		s.Require().NoError(err)
		s.NotNil(strategy)
	}
}

func (s *ServiceSuite) TestStrategyUnknown() {
	_, err := s.service.Strategy("genius")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ServiceSuite) TestStepAppliesChosenCommand() {
	player := &fakePlayer{accept: true}
	s.mockRandom.QueueIntn(3)

	action, err := s.service.Step(player, model.BotStrategyRandom)
	s.Require().NoError(err)

	s.Equal(model.CommandRotateClockwise, action.Command)
	s.True(action.Applied)
	s.Equal([]model.Command{model.CommandRotateClockwise}, player.commands)
}

func (s *ServiceSuite) TestStepReportsRejectedCommand() {
	player := &fakePlayer{accept: false}

	action, err := s.service.Step(player, model.BotStrategyDrop)
	s.Require().NoError(err)

	s.Equal(model.CommandSoftDrop, action.Command)
	s.False(action.Applied)
}

func (s *ServiceSuite) TestStepUnknownStrategy() {
	player := &fakePlayer{}

	_, err := s.service.Step(player, "genius")
	s.ErrorIs(err, model.ErrUnknownStrategy)
	s.Empty(player.commands)
}
