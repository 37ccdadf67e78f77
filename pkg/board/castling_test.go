package board_test

import (
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestCastlingHasClear(t *testing.T) {
	c := board.AllCastlingRights
	assert.True(t, c.Has(board.WK))
	assert.True(t, c.Has(board.BQ))

	c = c.Clear(board.WK)
	assert.False(t, c.Has(board.WK))
	assert.True(t, c.Has(board.WQ))
}

func TestCastlingString(t *testing.T) {
	assert.Equal(t, "KQkq", board.AllCastlingRights.String())
	assert.Equal(t, "-", board.Castling(0).String())
	assert.Equal(t, "Kq", (board.WK | board.BQ).String())
}

func TestParseCastling(t *testing.T) {
	c, ok := board.ParseCastling("KQkq")
	assert.True(t, ok)
	assert.Equal(t, board.AllCastlingRights, c)

	c, ok = board.ParseCastling("-")
	assert.True(t, ok)
	assert.Equal(t, board.Castling(0), c)

	_, ok = board.ParseCastling("X")
	assert.False(t, ok)
}

func TestForColor(t *testing.T) {
	ks, qs := board.ForColor(board.White)
	assert.Equal(t, board.WK, ks)
	assert.Equal(t, board.WQ, qs)

	ks, qs = board.ForColor(board.Black)
	assert.Equal(t, board.BK, ks)
	assert.Equal(t, board.BQ, qs)
}
