package board

import (
	"log/slog"

	"github.com/mcoot/blockdrop/internal/model"
)

// Points for the first row cleared in a sweep; each further row in the same sweep doubles it
const rowPoints = 10

// Service provides collision, merge and row-sweep operations on boards
type Service struct {
	scoreBase int
	logger    *slog.Logger
}

// New creates a new BoardService. scoreBase multiplies every award; values below 1 mean 1.
func New(scoreBase int, logger *slog.Logger) *Service {
	if scoreBase < 1 {
		scoreBase = 1
	}
	return &Service{
		scoreBase: scoreBase,
		logger:    logger,
	}
}

// Collides reports whether any occupied shape cell at pos would leave the board
// (either side, below the floor, or above the top) or land on an occupied cell
func (s *Service) Collides(board *model.Board, shape model.Shape, pos model.Position) bool {
	for y, row := range shape {
		for x, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if !board.InBounds(bx, by) {
				return true
			}
			if !board.Cells[by][bx].IsEmpty() {
				return true
			}
		}
	}
	return false
}

// Merge writes every occupied shape cell into the board at pos.
//
// The caller must have checked Collides first: Merge does not validate and will
// overwrite whatever is underneath. Cells outside the grid are dropped.
func (s *Service) Merge(board *model.Board, shape model.Shape, pos model.Position) {
	for y, row := range shape {
		for x, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			board.Set(pos.X+x, pos.Y+y, cell)
		}
	}
}

// SweepCompletedRows removes every full row, bottom to top, and scores them.
// A row that shifts into a cleared index is examined again before moving up.
func (s *Service) SweepCompletedRows(board *model.Board) model.SweepResult {
	var result model.SweepResult
	multiplier := 1
	for y := board.Height - 1; y >= 0; y-- {
		if !board.IsRowFull(y) {
			continue
		}
		board.RemoveRow(y)
		y++

		result.Lines++
		result.Points += rowPoints * multiplier * s.scoreBase
		multiplier *= 2
	}

	if result.Lines > 0 {
		s.logger.Debug("rows swept",
			slog.Int("lines", result.Lines),
			slog.Int("points", result.Points),
		)
	}

	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	Collides(board *model.Board, shape model.Shape, pos model.Position) bool
	Merge(board *model.Board, shape model.Shape, pos model.Position)
	SweepCompletedRows(board *model.Board) model.SweepResult
}

var _ ServiceInterface = (*Service)(nil)
