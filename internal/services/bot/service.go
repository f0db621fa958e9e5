package bot

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/blockdrop/internal/dependencies/random"
	"github.com/mcoot/blockdrop/internal/model"
)

// Player is the part of the engine a bot drives
type Player interface {
	Snapshot() model.Snapshot
	ApplyCommand(cmd model.Command) bool
}

// Action records a single command a bot issued
type Action struct {
	Strategy string
	Command  model.Command
	Applied  bool
}

// Service looks up strategies and plays their moves
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a bot Service with the built-in strategies
func NewService(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		strategies: map[string]Strategy{
			model.BotStrategyRandom: NewRandomStrategy(rnd),
			model.BotStrategyDrop:   DropStrategy{},
		},
		logger: logger.With(slog.String("component", "bot-service")),
	}
}

// Strategy returns the named strategy
func (s *Service) Strategy(name string) (Strategy, error) {
	strategy, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return strategy, nil
}

// Step asks the strategy for one command and applies it to the player
func (s *Service) Step(player Player, name string) (Action, error) {
	strategy, err := s.Strategy(name)
	if err != nil {
		return Action{}, err
	}

	cmd := strategy.ChooseCommand(player.Snapshot())
	applied := player.ApplyCommand(cmd)

	s.logger.Debug("bot command",
		slog.String("strategy", name),
		slog.String("command", string(cmd)),
		slog.Bool("applied", applied),
	)

	return Action{Strategy: name, Command: cmd, Applied: applied}, nil
}
