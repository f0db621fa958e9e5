package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockdrop/internal/factory"
	"github.com/mcoot/blockdrop/internal/middleware"
	"github.com/mcoot/blockdrop/internal/services/engine"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blockdrop",
		Short: "Headless falling-block game engine",
		Long: `blockdrop runs a single-player falling-block game without a screen.

Games can be replayed from a command script, driven in real time by an
autopilot or commands on stdin, and printed as a text grid or JSON.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flag("drop-interval"); f != nil && f.Changed {
				cfg.ClearDropIntervalEnv()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: BLOCKDROP_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for piece selection; empty is random (env: BLOCKDROP_SEED)")
	rootCmd.PersistentFlags().DurationVar(&cfg.DropInterval, "drop-interval", cfg.DropInterval, "Gravity interval (env: BLOCKDROP_DROP_INTERVAL)")
	rootCmd.PersistentFlags().IntVar(&cfg.Width, "width", cfg.Width, "Board width")
	rootCmd.PersistentFlags().IntVar(&cfg.Height, "height", cfg.Height, "Board height")
	rootCmd.PersistentFlags().IntVar(&cfg.ScoreBase, "score-base", cfg.ScoreBase, "Multiplier applied to every line clear")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPiecesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger logs JSON to w: warnings and up normally, everything when verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// newApp wires an application from the global flags
func newApp(cmd *cobra.Command) (*factory.App, *Output, error) {
	out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

	factoryCfg, err := cfg.FactoryConfig(logger)
	if err != nil {
		return nil, nil, err
	}
	app, err := factory.New(factoryCfg)
	if err != nil {
		return nil, nil, err
	}
	return app, out, nil
}

// listen attaches listener to the engine behind the standard middleware
func listen(app *factory.App, listener engine.Listener) {
	app.Engine.SetListener(middleware.Chain(listener,
		middleware.Recovery(logger, nil),
		middleware.Logging(logger, app.Clock),
	))
}
