package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/board"
	"github.com/mcoot/blockdrop/internal/services/motion"
	"github.com/mcoot/blockdrop/internal/services/pieces"
)

// Listener receives engine events. It is called synchronously from Tick and ApplyCommand.
type Listener interface {
	OnEvent(event model.Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(event model.Event)

// OnEvent calls f(event)
func (f ListenerFunc) OnEvent(event model.Event) {
	f(event)
}

// Engine runs one game: gravity, command dispatch, locking, spawning and game over.
//
// Engine is not safe for concurrent use. Tick, ApplyCommand and Snapshot must be
// called from a single goroutine.
type Engine struct {
	cfg          Config
	pieceService pieces.ServiceInterface
	boardService board.ServiceInterface
	motion       motion.ServiceInterface
	logger       *slog.Logger
	listener     Listener

	state       model.GameState
	dropCounter time.Duration
}

// New creates an engine with an empty board, a piece at the top and one queued
func New(
	cfg Config,
	pieceService pieces.ServiceInterface,
	boardService board.ServiceInterface,
	motionService motion.ServiceInterface,
	logger *slog.Logger,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:          cfg,
		pieceService: pieceService,
		boardService: boardService,
		motion:       motionService,
		logger:       logger,
	}
	e.state.Board = model.NewBoard(cfg.Width, cfg.Height)
	e.reset()
	return e, nil
}

// SetListener registers the event listener; nil disables events
func (e *Engine) SetListener(listener Listener) {
	e.listener = listener
}

// Tick advances gravity by delta. Once the accumulated time exceeds the drop
// interval the piece moves down one row, or locks if it cannot. No-op after game over.
func (e *Engine) Tick(delta time.Duration) {
	if e.state.IsOver() {
		return
	}
	e.dropCounter += delta
	if e.dropCounter <= e.cfg.DropInterval {
		return
	}
	if !e.motion.AttemptMove(e.state.Board, &e.state.Active, 0, 1) {
		e.lock()
	}
	e.dropCounter = 0
}

// ApplyCommand dispatches a player command and reports whether it changed the game.
// After game over only Restart is accepted; Restart is ignored while playing.
// Commands never lock a piece.
func (e *Engine) ApplyCommand(cmd model.Command) bool {
	if e.state.IsOver() {
		if cmd != model.CommandRestart {
			return false
		}
		e.restart()
		return true
	}

	switch cmd {
	case model.CommandMoveLeft:
		return e.motion.AttemptMove(e.state.Board, &e.state.Active, -1, 0)
	case model.CommandMoveRight:
		return e.motion.AttemptMove(e.state.Board, &e.state.Active, 1, 0)
	case model.CommandSoftDrop:
		return e.motion.AttemptMove(e.state.Board, &e.state.Active, 0, 1)
	case model.CommandRotateClockwise:
		return e.motion.AttemptRotate(e.state.Board, &e.state.Active)
	case model.CommandRestart:
		return false
	default:
		e.logger.Warn("ignoring unknown command", slog.String("command", string(cmd)))
		return false
	}
}

// SetBoard replaces the settled blocks with a copy of b. The active piece is
// left where it is, so b must leave its cells empty; otherwise the board is
// rejected and the game is unchanged.
func (e *Engine) SetBoard(b *model.Board) error {
	if b.Width != e.cfg.Width || b.Height != e.cfg.Height {
		return fmt.Errorf("%w: board is %dx%d, engine expects %dx%d",
			model.ErrInvalidConfig, b.Width, b.Height, e.cfg.Width, e.cfg.Height)
	}
	active := e.state.Active
	if e.boardService.Collides(b, active.Shape, active.Position) {
		return fmt.Errorf("%w: board overlaps the active %s piece at (%d,%d)",
			model.ErrInvalidConfig, active.Tag, active.Position.X, active.Position.Y)
	}
	e.state.Board = b.Clone()
	return nil
}

// Snapshot returns a deep copy of the game for rendering
func (e *Engine) Snapshot() model.Snapshot {
	return e.state.Snapshot()
}

// Score returns the current score
func (e *Engine) Score() int {
	return e.state.Score
}

// Phase returns the current state machine phase
func (e *Engine) Phase() model.Phase {
	return e.state.Phase
}

// IsOver returns true after a spawn collided
func (e *Engine) IsOver() bool {
	return e.state.IsOver()
}

// Config returns the settings the engine was built with
func (e *Engine) Config() Config {
	return e.cfg
}

// lock merges the active piece, sweeps, and hands over to the next piece
func (e *Engine) lock() {
	active := e.state.Active
	e.boardService.Merge(e.state.Board, active.Shape, active.Position)
	e.logger.Debug("piece locked",
		slog.String("tag", string(active.Tag)),
		slog.Int("x", active.Position.X),
		slog.Int("y", active.Position.Y),
	)
	e.emit(model.EventPieceLocked, model.PieceLockedPayload{Tag: active.Tag, Position: active.Position})

	result := e.boardService.SweepCompletedRows(e.state.Board)
	if result.Lines > 0 {
		e.state.Score += result.Points
		e.emit(model.EventRowsCleared, model.RowsClearedPayload{
			Lines:  result.Lines,
			Points: result.Points,
			Score:  e.state.Score,
		})
	}

	e.spawn(e.state.Next)
	e.state.Next = e.pieceService.RandomPiece()

	if e.boardService.Collides(e.state.Board, e.state.Active.Shape, e.state.Active.Position) {
		e.state.Phase = model.PhaseGameOver
		e.logger.Info("game over", slog.Int("score", e.state.Score))
		e.emit(model.EventGameOver, model.GameOverPayload{Score: e.state.Score})
		return
	}
	e.emitSpawned()
}

// spawn places a piece at the top, horizontally centered
func (e *Engine) spawn(piece model.Piece) {
	e.state.Active = model.ActivePiece{
		Piece: piece,
		Position: model.Position{
			X: (e.state.Board.Width - piece.Shape.Width()) / 2,
			Y: 0,
		},
	}
}

func (e *Engine) restart() {
	e.reset()
	e.logger.Info("game restarted")
	e.emit(model.EventGameRestarted, nil)
	e.emitSpawned()
}

// reset clears the board and draws the active piece, then the next one
func (e *Engine) reset() {
	e.state.Board.Clear()
	e.spawn(e.pieceService.RandomPiece())
	e.state.Next = e.pieceService.RandomPiece()
	e.state.Score = 0
	e.state.Phase = model.PhasePlaying
	e.dropCounter = 0
}

func (e *Engine) emitSpawned() {
	e.emit(model.EventPieceSpawned, model.PieceSpawnedPayload{
		Tag:      e.state.Active.Tag,
		Position: e.state.Active.Position,
		Next:     e.state.Next.Tag,
	})
}

func (e *Engine) emit(eventType model.EventType, payload any) {
	if e.listener == nil {
		return
	}
	e.listener.OnEvent(model.Event{Type: eventType, Payload: payload})
}
