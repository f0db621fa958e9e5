package model

import (
	"fmt"
	"strings"
)

// Shape is a piece matrix, row-major with the origin at the top-left: Shape[y][x]
type Shape [][]Cell

// ParseShape builds a shape from rows of cell letters, e.g. ".T.", "TTT", "..."
func ParseShape(rows ...string) (Shape, error) {
	shape := make(Shape, len(rows))
	width := -1
	for y, row := range rows {
		runes := []rune(row)
		if width >= 0 && len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", y, len(runes), width)
		}
		width = len(runes)
		shape[y] = make([]Cell, width)
		for x, r := range runes {
			cell, err := CellFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			shape[y][x] = cell
		}
	}
	return shape, nil
}

// Width returns the number of columns
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y := range s {
		out[y] = make([]Cell, len(s[y]))
		copy(out[y], s[y])
	}
	return out
}

// RotateClockwise returns a new matrix: transpose, then reverse each row
func (s Shape) RotateClockwise() Shape {
	rows, cols := s.Height(), s.Width()
	out := newShape(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[x][rows-1-y] = s[y][x]
		}
	}
	return out
}

// RotateCounterClockwise returns a new matrix: transpose, then reverse the row order.
// It is the exact inverse of RotateClockwise.
func (s Shape) RotateCounterClockwise() Shape {
	rows, cols := s.Height(), s.Width()
	out := newShape(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[cols-1-x][y] = s[y][x]
		}
	}
	return out
}

// Equal returns true if both shapes have the same dimensions and cells
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders one line per row using Cell.String
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

func newShape(height, width int) Shape {
	out := make(Shape, height)
	for y := range out {
		out[y] = make([]Cell, width)
	}
	return out
}
