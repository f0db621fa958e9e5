package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockdrop/internal/dependencies/mocks"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestChooseCommand_MapsDrawToMovement() {
	s.mockRandom.QueueIntn(0, 1, 2, 3)

	var got []model.Command
	for i := 0; i < 4; i++ {
		got = append(got, s.strategy.ChooseCommand(model.Snapshot{}))
	}

	s.Equal([]model.Command{
		model.CommandMoveLeft,
		model.CommandMoveRight,
		model.CommandSoftDrop,
		model.CommandRotateClockwise,
	}, got)
}

func (s *StrategySuite) TestChooseCommand_RestartsWhenOver() {
	s.mockRandom.QueueIntn(2)

	s.Equal(model.CommandRestart, s.strategy.ChooseCommand(model.Snapshot{IsOver: true}))
	s.Equal(1, s.mockRandom.Remaining())
}

func (s *StrategySuite) TestDropStrategy() {
	s.Equal(model.CommandSoftDrop, bot.DropStrategy{}.ChooseCommand(model.Snapshot{}))
	s.Equal(model.CommandRestart, bot.DropStrategy{}.ChooseCommand(model.Snapshot{IsOver: true}))
}
