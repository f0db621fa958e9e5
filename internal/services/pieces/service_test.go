package pieces

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockdrop/internal/dependencies/mocks"
	"github.com/mcoot/blockdrop/internal/dependencies/random"
	"github.com/mcoot/blockdrop/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// CreatePiece tests

func (s *ServiceSuite) TestCreatePieceDimensions() {
	expected := map[model.PieceTag]int{
		model.TagO: 2,
		model.TagT: 3,
		model.TagL: 3,
		model.TagJ: 3,
		model.TagS: 3,
		model.TagZ: 3,
		model.TagI: 4,
	}
	for tag, size := range expected {
		shape, err := s.service.CreatePiece(tag)
		s.Require().NoError(err)
		s.Equal(size, shape.Width(), "tag %s", tag)
		s.Equal(size, shape.Height(), "tag %s", tag)
	}
}

func (s *ServiceSuite) TestCreatePieceUsesOwnTagAndFourCells() {
	for _, tag := range model.AllTags {
		shape, err := s.service.CreatePiece(tag)
		s.Require().NoError(err)

		count := 0
		for _, row := range shape {
			for _, cell := range row {
				if cell.IsEmpty() {
					continue
				}
				count++
				s.Equal(tag.Cell(), cell)
			}
		}
		s.Equal(4, count, "tag %s", tag)
	}
}

func (s *ServiceSuite) TestCreatePieceT() {
	shape, err := s.service.CreatePiece(model.TagT)
	s.Require().NoError(err)
	s.Equal(".T.\nTTT\n...", shape.String())
}

func (s *ServiceSuite) TestCreatePieceIIsVertical() {
	shape, err := s.service.CreatePiece(model.TagI)
	s.Require().NoError(err)
	s.Equal(".I..\n.I..\n.I..\n.I..", shape.String())
}

func (s *ServiceSuite) TestCreatePieceReturnsCopy() {
	first, _ := s.service.CreatePiece(model.TagO)
	first[0][0] = model.Empty

	second, _ := s.service.CreatePiece(model.TagO)
	s.Equal(model.CellO, second[0][0])
}

func (s *ServiceSuite) TestCreatePieceInvalidTag() {
	_, err := s.service.CreatePiece("X")
	s.ErrorIs(err, model.ErrInvalidTag)
}

func (s *ServiceSuite) TestMustCreatePiecePanicsOnInvalidTag() {
	s.Panics(func() { s.service.MustCreatePiece("") })
}

// RandomType tests

func (s *ServiceSuite) TestRandomTypeFollowsDrawOrder() {
	s.random.QueueIntn(0, 1, 2, 3, 4, 5, 6)

	var got []model.PieceTag
	for i := 0; i < 7; i++ {
		got = append(got, s.service.RandomType())
	}

	s.Equal([]model.PieceTag{model.TagT, model.TagJ, model.TagL, model.TagO, model.TagS, model.TagZ, model.TagI}, got)
}

func (s *ServiceSuite) TestRandomTypeDrawsEveryTag() {
	service := New(random.NewSeeded(7))
	counts := make(map[model.PieceTag]int)

	const draws = 7000
	for i := 0; i < draws; i++ {
		counts[service.RandomType()]++
	}

	s.Len(counts, len(model.AllTags))
	for _, tag := range model.AllTags {
		// Expected 1000 each; a uniform draw stays well inside this band
		s.InDelta(draws/len(model.AllTags), counts[tag], 200, "tag %s", tag)
	}
}

func (s *ServiceSuite) TestRandomPieceMatchesTag() {
	s.random.QueueTags(model.TagZ)

	piece := s.service.RandomPiece()

	s.Equal(model.TagZ, piece.Tag)
	s.Equal("ZZ.\n.ZZ\n...", piece.Shape.String())
}
