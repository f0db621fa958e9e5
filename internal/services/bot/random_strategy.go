package bot

import (
	"github.com/mcoot/blockdrop/internal/dependencies/random"
	"github.com/mcoot/blockdrop/internal/model"
)

// Commands a bot may pick while the game is running
var movementCommands = []model.Command{
	model.CommandMoveLeft,
	model.CommandMoveRight,
	model.CommandSoftDrop,
	model.CommandRotateClockwise,
}

// RandomStrategy picks movement commands uniformly at random
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseCommand returns a random movement, or Restart once the game is over
func (s *RandomStrategy) ChooseCommand(snapshot model.Snapshot) model.Command {
	if snapshot.IsOver {
		return model.CommandRestart
	}
	return movementCommands[s.random.Intn(len(movementCommands))]
}

// DropStrategy only ever soft-drops, stacking pieces in the spawn column
type DropStrategy struct{}

// ChooseCommand returns SoftDrop, or Restart once the game is over
func (DropStrategy) ChooseCommand(snapshot model.Snapshot) model.Command {
	if snapshot.IsOver {
		return model.CommandRestart
	}
	return model.CommandSoftDrop
}
