package pieces

import (
	"fmt"

	"github.com/mcoot/blockdrop/internal/dependencies/random"
	"github.com/mcoot/blockdrop/internal/model"
)

// Canonical spawn orientation of each piece kind
var templates = map[model.PieceTag][]string{
	model.TagT: {".T.", "TTT", "..."},
	model.TagO: {"OO", "OO"},
	model.TagL: {"..L", "LLL", "..."},
	model.TagJ: {"J..", "JJJ", "..."},
	model.TagI: {".I..", ".I..", ".I..", ".I.."},
	model.TagS: {".SS", "SS.", "..."},
	model.TagZ: {"ZZ.", ".ZZ", "..."},
}

// Service creates piece shapes and picks random piece kinds
type Service struct {
	random random.Random
	shapes map[model.PieceTag]model.Shape
}

// New creates a new PieceService
func New(rnd random.Random) *Service {
	shapes := make(map[model.PieceTag]model.Shape, len(templates))
	for tag, rows := range templates {
		shape, err := model.ParseShape(rows...)
		if err != nil {
			panic(fmt.Sprintf("pieces: bad template for %s: %v", tag, err))
		}
		shapes[tag] = shape
	}
	return &Service{
		random: rnd,
		shapes: shapes,
	}
}

// CreatePiece returns a fresh copy of the canonical shape for a tag
func (s *Service) CreatePiece(tag model.PieceTag) (model.Shape, error) {
	shape, ok := s.shapes[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTag, tag)
	}
	return shape.Clone(), nil
}

// MustCreatePiece is CreatePiece for tags known to be valid; it panics otherwise
func (s *Service) MustCreatePiece(tag model.PieceTag) model.Shape {
	shape, err := s.CreatePiece(tag)
	if err != nil {
		panic(err)
	}
	return shape
}

// RandomType draws one of the seven tags uniformly
func (s *Service) RandomType() model.PieceTag {
	return model.AllTags[s.random.Intn(len(model.AllTags))]
}

// RandomPiece draws a tag and builds its shape
func (s *Service) RandomPiece() model.Piece {
	tag := s.RandomType()
	return model.Piece{Tag: tag, Shape: s.MustCreatePiece(tag)}
}

// Interface for dependency injection
type ServiceInterface interface {
	CreatePiece(tag model.PieceTag) (model.Shape, error)
	MustCreatePiece(tag model.PieceTag) model.Shape
	RandomType() model.PieceTag
	RandomPiece() model.Piece
}

var _ ServiceInterface = (*Service)(nil)
