package model

// Phase is the engine's top-level state
type Phase string

const (
	PhasePlaying  Phase = "playing"   // A piece is falling
	PhaseGameOver Phase = "game_over" // A spawned piece collided; only restart is accepted
)

// Piece is a shape together with the kind it was created from
type Piece struct {
	Tag   PieceTag
	Shape Shape
}

// ActivePiece is the piece currently under player control
type ActivePiece struct {
	Piece
	Position Position
}

// GameState holds everything the engine mutates
type GameState struct {
	Board  *Board
	Active ActivePiece
	Next   Piece
	Score  int
	Phase  Phase
}

// IsOver returns true once a spawn has collided
func (g *GameState) IsOver() bool {
	return g.Phase == PhaseGameOver
}

// Snapshot is a read-only copy of the game for renderers
type Snapshot struct {
	Board     [][]Cell
	Active    Shape
	ActiveTag PieceTag
	Position  Position
	Next      Shape
	NextTag   PieceTag
	Score     int
	IsOver    bool
}

// Snapshot deep-copies the state so callers cannot mutate the engine
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Board:     g.Board.Rows(),
		Active:    g.Active.Shape.Clone(),
		ActiveTag: g.Active.Tag,
		Position:  g.Active.Position,
		Next:      g.Next.Shape.Clone(),
		NextTag:   g.Next.Tag,
		Score:     g.Score,
		IsOver:    g.IsOver(),
	}
}

// Composite returns the board with the active piece overlaid on it
func (s Snapshot) Composite() [][]Cell {
	out := make([][]Cell, len(s.Board))
	for y := range s.Board {
		out[y] = make([]Cell, len(s.Board[y]))
		copy(out[y], s.Board[y])
	}
	for y, row := range s.Active {
		for x, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			by, bx := s.Position.Y+y, s.Position.X+x
			if by >= 0 && by < len(out) && bx >= 0 && bx < len(out[by]) {
				out[by][bx] = cell
			}
		}
	}
	return out
}
