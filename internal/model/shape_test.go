package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, rows ...string) Shape {
	t.Helper()
	shape, err := ParseShape(rows...)
	require.NoError(t, err)
	return shape
}

func TestParseShape(t *testing.T) {
	shape := mustShape(t, ".T.", "TTT", "...")

	assert.Equal(t, 3, shape.Width())
	assert.Equal(t, 3, shape.Height())
	assert.Equal(t, Empty, shape[0][0])
	assert.Equal(t, CellT, shape[0][1])
	assert.Equal(t, ".T.\nTTT\n...", shape.String())
}

func TestParseShapeRejectsRaggedRows(t *testing.T) {
	_, err := ParseShape("TT", "T")
	assert.Error(t, err)
}

func TestParseShapeRejectsUnknownLetter(t *testing.T) {
	_, err := ParseShape("TX")
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestRotateClockwise(t *testing.T) {
	shape := mustShape(t, ".T.", "TTT", "...")

	rotated := shape.RotateClockwise()

	assert.Equal(t, ".T.\n.TT\n.T.", rotated.String())
	// Original untouched
	assert.Equal(t, ".T.\nTTT\n...", shape.String())
}

func TestRotateCounterClockwise(t *testing.T) {
	shape := mustShape(t, ".T.", "TTT", "...")

	assert.Equal(t, ".T.\nTT.\n.T.", shape.RotateCounterClockwise().String())
}

func TestRotateCounterClockwiseInvertsClockwise(t *testing.T) {
	shapes := []Shape{
		mustShape(t, ".T.", "TTT", "..."),
		mustShape(t, ".SS", "SS.", "..."),
		mustShape(t, ".I..", ".I..", ".I..", ".I.."),
		mustShape(t, "LLL", "L.."),
	}
	for _, shape := range shapes {
		assert.True(t, shape.Equal(shape.RotateClockwise().RotateCounterClockwise()), shape.String())
		assert.True(t, shape.Equal(shape.RotateCounterClockwise().RotateClockwise()), shape.String())
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, rows := range [][]string{
		{".T.", "TTT", "..."},
		{"OO", "OO"},
		{"..L", "LLL", "..."},
		{"J..", "JJJ", "..."},
		{".I..", ".I..", ".I..", ".I.."},
		{".SS", "SS.", "..."},
		{"ZZ.", ".ZZ", "..."},
	} {
		shape := mustShape(t, rows...)
		rotated := shape
		for i := 0; i < 4; i++ {
			rotated = rotated.RotateClockwise()
		}
		assert.True(t, shape.Equal(rotated), shape.String())
	}
}

func TestRotateRectangular(t *testing.T) {
	shape := mustShape(t, "LLL", "L..")

	rotated := shape.RotateClockwise()

	assert.Equal(t, 2, rotated.Width())
	assert.Equal(t, 3, rotated.Height())
	assert.Equal(t, "LL\n.L\n.L", rotated.String())
}

func TestCloneIsDeep(t *testing.T) {
	shape := mustShape(t, "OO", "OO")
	clone := shape.Clone()
	clone[0][0] = Empty

	assert.Equal(t, CellO, shape[0][0])
}
