package model

import (
	"fmt"
	"strings"
)

// Default playfield dimensions
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 20
)

// Position is the board coordinate of a shape's top-left corner
type Position struct {
	X int // 0-indexed from left
	Y int // 0-indexed from top
}

// Add returns the position shifted by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Board is the playfield occupancy grid. Its dimensions never change after creation.
type Board struct {
	Width  int
	Height int
	Cells  [][]Cell // Row-major: Cells[y][x]
}

// NewBoard creates an all-empty board of the given size
func NewBoard(width, height int) *Board {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// ParseBoard builds a board whose bottom rows match the given strings.
// Rows use cell letters with '.' for empty, e.g. "TTTTTTTTT.". Rows above
// the given ones are left empty.
func ParseBoard(width, height int, rows ...string) (*Board, error) {
	if len(rows) > height {
		return nil, fmt.Errorf("%d rows do not fit a board of height %d", len(rows), height)
	}
	board := NewBoard(width, height)
	top := height - len(rows)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %q is not %d cells wide", row, width)
		}
		for x, r := range runes {
			cell, err := CellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %q col %d: %w", row, x, err)
			}
			board.Set(x, top+i, cell)
		}
	}
	return board, nil
}

// InBounds returns true if (x, y) is inside the grid
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get returns the cell at (x, y), or Empty if out of bounds
func (b *Board) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.Cells[y][x]
}

// Set writes a cell; out-of-bounds writes are ignored
func (b *Board) Set(x, y int, cell Cell) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = cell
	}
}

// IsRowFull returns true if every cell of row y is occupied
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.Height {
		return false
	}
	for _, cell := range b.Cells[y] {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts every row above it down by one
// and inserts an empty row at the top
func (b *Board) RemoveRow(y int) {
	if y < 0 || y >= b.Height {
		return
	}
	removed := b.Cells[y]
	copy(b.Cells[1:y+1], b.Cells[:y])
	for x := range removed {
		removed[x] = Empty
	}
	b.Cells[0] = removed
}

// Clear empties every cell
func (b *Board) Clear() {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Empty
		}
	}
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for y := range b.Cells {
		for _, cell := range b.Cells[y] {
			if cell.IsEmpty() {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy
func (b *Board) Clone() *Board {
	out := NewBoard(b.Width, b.Height)
	for y := range b.Cells {
		copy(out.Cells[y], b.Cells[y])
	}
	return out
}

// Rows returns a copy of the grid
func (b *Board) Rows() [][]Cell {
	return b.Clone().Cells
}

// String renders one line per row using Cell.String
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// SweepResult is the outcome of removing completed rows
type SweepResult struct {
	Lines  int // Rows removed in this sweep
	Points int // Score awarded for them
}
