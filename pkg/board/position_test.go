package board_test

import (
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultStartingPosition(t *testing.T) {
	pos := board.NewDefault()

	assert.Equal(t, board.White, pos.SideToMove)
	assert.Equal(t, board.AllCastlingRights, pos.Castling)
	assert.True(t, pos.EnPassant.IsNull())
	assert.Equal(t, uint32(0), pos.HalfmoveClock)
	assert.Equal(t, uint32(1), pos.FullmoveNumber)

	assert.Equal(t, board.NewPiece(board.Rook, board.White), pos.At(board.NewSquare(7, 0)))
	assert.Equal(t, board.NewPiece(board.King, board.White), pos.At(board.NewSquare(7, 4)))
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), pos.At(board.NewSquare(6, 0)))
	assert.Equal(t, board.NewPiece(board.King, board.Black), pos.At(board.NewSquare(0, 4)))
	assert.Equal(t, board.NewPiece(board.Pawn, board.Black), pos.At(board.NewSquare(1, 7)))
	assert.True(t, pos.IsEmpty(board.NewSquare(4, 4)))
}

func TestFindKing(t *testing.T) {
	pos := board.NewDefault()

	sq, ok := pos.FindKing(board.White)
	assert.True(t, ok)
	assert.Equal(t, board.NewSquare(7, 4), sq)

	sq, ok = pos.FindKing(board.Black)
	assert.True(t, ok)
	assert.Equal(t, board.NewSquare(0, 4), sq)

	empty := board.New()
	_, ok = empty.FindKing(board.White)
	assert.False(t, ok)
}

func TestCloneIndependence(t *testing.T) {
	pos := board.NewDefault()
	clone := pos.Clone()

	clone.Set(board.NewSquare(4, 4), board.NewPiece(board.Queen, board.White))
	assert.True(t, pos.IsEmpty(board.NewSquare(4, 4)))
	assert.False(t, clone.IsEmpty(board.NewSquare(4, 4)))

	assert.Equal(t, 0, clone.History().Len())
}

func TestHistoryStartsEmpty(t *testing.T) {
	pos := board.New()
	assert.Equal(t, 0, pos.History().Len())
}
