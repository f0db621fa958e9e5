package loop

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/blockdrop/internal/dependencies/clock"
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/bot"
)

// Engine is what the driver schedules
type Engine interface {
	Tick(delta time.Duration)
	ApplyCommand(cmd model.Command) bool
	Snapshot() model.Snapshot
	IsOver() bool
}

// Driver turns wall-clock frames into engine ticks. All engine calls happen on
// the goroutine that calls Frame or Run.
type Driver struct {
	engine Engine
	clock  clock.Clock
	bots   *bot.Service
	logger *slog.Logger

	last    time.Time
	started bool
}

// RunOptions controls a real-time run
type RunOptions struct {
	FrameInterval  time.Duration         // Time between frames
	Duration       time.Duration         // Stop after this much clock time; 0 runs until stopped
	Bot            string                // Strategy name; empty disables the bot
	BotInterval    time.Duration         // Clock time between bot commands
	Input          <-chan model.Command  // External commands; may be nil
	StopOnGameOver bool
}

// RunResult summarises a finished run
type RunResult struct {
	Frames   int
	Commands int
	Elapsed  time.Duration
	Snapshot model.Snapshot
}

// NewDriver creates a Driver. bots may be nil if no run uses a bot.
func NewDriver(engine Engine, clk clock.Clock, bots *bot.Service, logger *slog.Logger) *Driver {
	return &Driver{
		engine: engine,
		clock:  clk,
		bots:   bots,
		logger: logger,
	}
}

// Frame ticks the engine with the time elapsed since the previous frame and
// returns that delta. The first frame, and any frame whose timestamp goes
// backwards, ticks with zero.
func (d *Driver) Frame(now time.Time) time.Duration {
	var delta time.Duration
	if d.started {
		delta = now.Sub(d.last)
		if delta < 0 {
			delta = 0
		}
	}
	d.started = true
	d.last = now
	d.engine.Tick(delta)
	return delta
}

// Run ticks the engine every FrameInterval until ctx is done, Duration has
// elapsed on the clock, or the game ends with StopOnGameOver set.
// Cancellation returns the partial result with ctx.Err().
func (d *Driver) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	if opts.FrameInterval <= 0 {
		return RunResult{}, errors.New("frame interval must be positive")
	}
	if opts.Bot != "" {
		if d.bots == nil {
			return RunResult{}, errors.New("bot requested but driver has no bot service")
		}
		if _, err := d.bots.Strategy(opts.Bot); err != nil {
			return RunResult{}, err
		}
	}

	ticker := time.NewTicker(opts.FrameInterval)
	defer ticker.Stop()

	var result RunResult
	start := d.clock.Now()
	d.Frame(start)
	result.Frames++

	finish := func() RunResult {
		result.Elapsed = d.clock.Now().Sub(start)
		result.Snapshot = d.engine.Snapshot()
		return result
	}

	d.logger.Info("run started",
		slog.Duration("frame_interval", opts.FrameInterval),
		slog.Duration("duration", opts.Duration),
		slog.String("bot", opts.Bot),
	)

	var sinceBot time.Duration
	input := opts.Input
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("run cancelled", slog.Int("frames", result.Frames))
			return finish(), ctx.Err()

		case cmd, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			d.engine.ApplyCommand(cmd)
			result.Commands++

		case <-ticker.C:
			delta := d.Frame(d.clock.Now())
			result.Frames++

			if opts.StopOnGameOver && d.engine.IsOver() {
				d.logger.Info("run ended by game over", slog.Int("frames", result.Frames))
				return finish(), nil
			}

			if opts.Bot != "" {
				sinceBot += delta
				if sinceBot >= opts.BotInterval {
					sinceBot = 0
					if _, err := d.bots.Step(d.engine, opts.Bot); err != nil {
						return finish(), err
					}
					result.Commands++
				}
			}

			if opts.Duration > 0 && d.clock.Now().Sub(start) >= opts.Duration {
				d.logger.Info("run duration reached", slog.Int("frames", result.Frames))
				return finish(), nil
			}
		}
	}
}
