package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/events"
	"github.com/mcoot/blockdrop/internal/services/loop"
)

// 60 frames per second
const defaultFrame = time.Second / 60

func newRunCmd() *cobra.Command {
	var (
		fps         int
		duration    time.Duration
		autoplay    bool
		strategy    string
		botInterval time.Duration
		stdin       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a game in real time",
		Long: `Run a game against the wall clock until it ends, --duration passes,
or the process is interrupted.

Moves come from the autopilot (--autoplay) or from stdin (--stdin), one
command or key name per line, e.g. "left", "ArrowUp" or "Enter".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("%w: fps must be positive", model.ErrInvalidConfig)
			}

			app, out, err := newApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := loop.RunOptions{
				FrameInterval:  time.Second / time.Duration(fps),
				Duration:       duration,
				StopOnGameOver: true,
			}
			if autoplay {
				opts.Bot = strategy
				opts.BotInterval = botInterval
			}
			if stdin {
				opts.Input = readCommands(ctx, cmd.InOrStdin(), logger)
			}

			// Events are printed off the game loop
			var printed chan struct{}
			var hub *events.Hub
			if cfg.Verbose {
				hub = events.NewHub(app.Clock, logger)
				go hub.Run()
				sub := hub.Subscribe("cli")
				printed = make(chan struct{})
				go func() {
					defer close(printed)
					for event := range sub.Events() {
						out.PrintEvent(event)
					}
				}()
				listen(app, hub)
			}

			result, err := app.Driver.Run(ctx, opts)

			if hub != nil {
				hub.Close()
				<-printed
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			out.Print(RunResult{
				Frames:    result.Frames,
				Commands:  result.Commands,
				ElapsedMS: result.Elapsed.Milliseconds(),
				Snapshot:  NewSnapshot(result.Snapshot),
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop after this long; 0 runs until game over")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "Let a bot play")
	cmd.Flags().StringVar(&strategy, "bot", model.BotStrategyRandom, "Bot strategy: random, drop")
	cmd.Flags().DurationVar(&botInterval, "bot-interval", 200*time.Millisecond, "Time between bot moves")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read commands from stdin, one per line")

	return cmd
}

// readCommands parses lines from r into commands. The channel closes when r is
// exhausted. After ctx is done no further commands are sent, but the goroutine
// only returns once the pending read on r completes.
func readCommands(ctx context.Context, r io.Reader, logger *slog.Logger) <-chan model.Command {
	commands := make(chan model.Command)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			command, err := model.ParseCommand(line)
			if err != nil {
				logger.Warn("ignoring input", slog.String("line", line), slog.String("error", err.Error()))
				continue
			}
			select {
			case commands <- command:
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}
