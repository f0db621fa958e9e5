package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/blockdrop/internal/dependencies/clock"
	"github.com/mcoot/blockdrop/internal/dependencies/random"
	"github.com/mcoot/blockdrop/internal/services/board"
	"github.com/mcoot/blockdrop/internal/services/bot"
	"github.com/mcoot/blockdrop/internal/services/engine"
	"github.com/mcoot/blockdrop/internal/services/loop"
	"github.com/mcoot/blockdrop/internal/services/motion"
	"github.com/mcoot/blockdrop/internal/services/pieces"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PieceService  *pieces.Service
	BoardService  *board.Service
	MotionService *motion.Service
	BotService    *bot.Service

	// Game
	Engine *engine.Engine
	Driver *loop.Driver
}

// Config holds configuration for the application factory
type Config struct {
	// Engine holds board size, drop interval and score base
	// If zero value, defaults to engine.DefaultConfig()
	Engine engine.Config
	// Seed makes piece selection reproducible (optional)
	// If nil, pieces are drawn from crypto/rand
	Seed *uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	} else {
		rnd = random.New()
	}

	// Use default engine config if not provided
	engineCfg := cfg.Engine
	if engineCfg == (engine.Config{}) {
		engineCfg = engine.DefaultConfig()
	}

	return newWithDependencies(clk, rnd, engineCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, engineCfg engine.Config, logger *slog.Logger) (*App, error) {
	// Create services
	pieceService := pieces.New(rnd)
	boardService := board.New(engineCfg.ScoreBase, logger)
	motionService := motion.New(boardService)
	botService := bot.NewService(rnd, logger)

	eng, err := engine.New(engineCfg, pieceService, boardService, motionService, logger)
	if err != nil {
		return nil, err
	}
	driver := loop.NewDriver(eng, clk, botService, logger)

	return &App{
		Clock:         clk,
		Random:        rnd,
		PieceService:  pieceService,
		BoardService:  boardService,
		MotionService: motionService,
		BotService:    botService,
		Engine:        eng,
		Driver:        driver,
	}, nil
}
