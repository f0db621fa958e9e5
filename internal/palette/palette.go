// Package palette maps board cells to display colours.
// It is kept apart from model so the engine never depends on how cells are drawn.
package palette

import "github.com/mcoot/blockdrop/internal/model"

var colors = map[model.Cell]string{
	model.CellT: "#FF0D72",
	model.CellO: "#FFD500",
	model.CellL: "#FF8C00",
	model.CellJ: "#0000F0",
	model.CellI: "#0DC2FF",
	model.CellS: "#0DFF72",
	model.CellZ: "#F53838",
}

// Color returns the hex colour for a cell. Empty cells have no colour.
func Color(cell model.Cell) (string, bool) {
	c, ok := colors[cell]
	return c, ok
}

// Table returns a copy of the colour table keyed by piece tag
func Table() map[model.PieceTag]string {
	out := make(map[model.PieceTag]string, len(colors))
	for _, tag := range model.AllTags {
		out[tag] = colors[tag.Cell()]
	}
	return out
}
