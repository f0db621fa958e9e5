package testutil

import (
	"github.com/mcoot/blockdrop/internal/model"
)

// BoardFromRows is model.ParseBoard for fixtures; it panics on bad input
func BoardFromRows(width, height int, rows ...string) *model.Board {
	board, err := model.ParseBoard(width, height, rows...)
	if err != nil {
		panic(err)
	}
	return board
}

// MustShape parses a shape or panics
func MustShape(rows ...string) model.Shape {
	shape, err := model.ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return shape
}
