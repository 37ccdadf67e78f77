package board_test

import (
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquareValidity(t *testing.T) {
	assert.True(t, board.NewSquare(0, 0).IsValid())
	assert.True(t, board.NewSquare(7, 7).IsValid())
	assert.False(t, board.NewSquare(8, 0).IsValid())
	assert.False(t, board.NewSquare(0, -1).IsValid())
	assert.True(t, board.NoSquare.IsNull())
	assert.False(t, board.NewSquare(0, 0).IsNull())
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquare("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 4), sq)

	sq, err = board.ParseSquare("a8")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(0, 0), sq)

	sq, err = board.ParseSquare("h1")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(7, 7), sq)

	_, err = board.ParseSquare("i1")
	assert.Error(t, err)
	_, err = board.ParseSquare("a9")
	assert.Error(t, err)
	_, err = board.ParseSquare("a")
	assert.Error(t, err)
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "e4", board.NewSquare(4, 4).String())
	assert.Equal(t, "a8", board.NewSquare(0, 0).String())
	assert.Equal(t, "h1", board.NewSquare(7, 7).String())
	assert.Equal(t, "-", board.NoSquare.String())
}

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "d4", "e2", "e4", "h8", "c7"} {
		sq, err := board.ParseSquare(s)
		assert.NoError(t, err)
		assert.Equal(t, s, sq.String())
	}
}
