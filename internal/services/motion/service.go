package motion

import (
	"github.com/mcoot/blockdrop/internal/model"
	"github.com/mcoot/blockdrop/internal/services/board"
)

// Service moves and rotates the active piece, using the board for collision feedback
type Service struct {
	boardService board.ServiceInterface
}

// New creates a new MotionService
func New(boardService board.ServiceInterface) *Service {
	return &Service{
		boardService: boardService,
	}
}

// AttemptMove shifts the piece by (dx, dy) unless that would collide.
// Returns true if the move was committed.
func (s *Service) AttemptMove(b *model.Board, piece *model.ActivePiece, dx, dy int) bool {
	next := piece.Position.Add(dx, dy)
	if s.boardService.Collides(b, piece.Shape, next) {
		return false
	}
	piece.Position = next
	return true
}

// AttemptRotate turns the piece clockwise. If the rotated shape collides it is
// kicked sideways by +1, -2, +3, -4, ... columns (cumulative) until it fits.
// Once the next kick would exceed the shape width the rotation is undone and the
// original column restored.
func (s *Service) AttemptRotate(b *model.Board, piece *model.ActivePiece) bool {
	originalX := piece.Position.X
	piece.Shape = piece.Shape.RotateClockwise()

	offset := 1
	for s.boardService.Collides(b, piece.Shape, piece.Position) {
		piece.Position.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > piece.Shape.Width() {
			piece.Shape = piece.Shape.RotateCounterClockwise()
			piece.Position.X = originalX
			return false
		}
	}
	return true
}

// Interface for dependency injection
type ServiceInterface interface {
	AttemptMove(b *model.Board, piece *model.ActivePiece, dx, dy int) bool
	AttemptRotate(b *model.Board, piece *model.ActivePiece) bool
}

var _ ServiceInterface = (*Service)(nil)
