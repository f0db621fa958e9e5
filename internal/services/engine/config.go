package engine

import (
	"fmt"
	"time"

	"github.com/mcoot/blockdrop/internal/model"
)

// widest piece kind; narrower boards could not spawn every piece
const minBoardSize = 4

// Config holds engine settings
type Config struct {
	Width        int
	Height       int
	DropInterval time.Duration // Gravity moves the piece once the accumulated time exceeds this
	ScoreBase    int           // Multiplier applied to every sweep award
}

// DefaultConfig returns the classic 10x20 board with a one second drop
func DefaultConfig() Config {
	return Config{
		Width:        model.DefaultBoardWidth,
		Height:       model.DefaultBoardHeight,
		DropInterval: time.Second,
		ScoreBase:    1,
	}
}

// Validate checks the config can host a game
func (c Config) Validate() error {
	if c.Width < minBoardSize || c.Height < minBoardSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			model.ErrInvalidConfig, c.Width, c.Height, minBoardSize, minBoardSize)
	}
	if c.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval must be positive", model.ErrInvalidConfig)
	}
	if c.ScoreBase < 1 {
		return fmt.Errorf("%w: score base must be at least 1", model.ErrInvalidConfig)
	}
	return nil
}
