package model

// Cell is the content of a single grid square
type Cell uint8

const (
	Empty Cell = iota
	CellT
	CellO
	CellL
	CellJ
	CellI
	CellS
	CellZ
)

// PieceTag names one of the seven piece kinds
type PieceTag string

const (
	TagT PieceTag = "T"
	TagO PieceTag = "O"
	TagL PieceTag = "L"
	TagJ PieceTag = "J"
	TagI PieceTag = "I"
	TagS PieceTag = "S"
	TagZ PieceTag = "Z"
)

// AllTags lists every piece kind in draw order
var AllTags = []PieceTag{TagT, TagJ, TagL, TagO, TagS, TagZ, TagI}

var tagCells = map[PieceTag]Cell{
	TagT: CellT,
	TagO: CellO,
	TagL: CellL,
	TagJ: CellJ,
	TagI: CellI,
	TagS: CellS,
	TagZ: CellZ,
}

// Valid returns true if the tag is one of the seven known kinds
func (t PieceTag) Valid() bool {
	_, ok := tagCells[t]
	return ok
}

// Cell returns the grid value a piece of this kind leaves behind, or Empty for unknown tags
func (t PieceTag) Cell() Cell {
	return tagCells[t]
}

// Tag returns the piece kind that produced this cell
func (c Cell) Tag() (PieceTag, bool) {
	for tag, cell := range tagCells {
		if cell == c {
			return tag, true
		}
	}
	return "", false
}

// IsEmpty returns true for cells with no block in them
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// String returns the tag letter, or "." for an empty cell
func (c Cell) String() string {
	tag, ok := c.Tag()
	if !ok {
		return "."
	}
	return string(tag)
}

// CellFromRune parses the single-letter form used by String.
// '.', ' ' and '0' are all read as Empty.
func CellFromRune(r rune) (Cell, error) {
	switch r {
	case '.', ' ', '0':
		return Empty, nil
	}
	tag := PieceTag(string(r))
	if !tag.Valid() {
		return Empty, ErrInvalidTag
	}
	return tag.Cell(), nil
}
