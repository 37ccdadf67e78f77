package rules_test

import (
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestPawnAttacksForward(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(6, 4), board.NewPiece(board.Pawn, board.White)) // e2

	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(5, 3), board.White)) // d3
	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(5, 5), board.White)) // f3
	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(7, 3), board.White))
	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(5, 4), board.White)) // straight ahead is not an attack
}

func TestBlackPawnAttacksForward(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(1, 4), board.NewPiece(board.Pawn, board.Black)) // e7

	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(2, 3), board.Black)) // d6
	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(2, 5), board.Black)) // f6
	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(0, 3), board.Black))
}

func TestRookRayAttack(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(4, 4), board.NewPiece(board.Rook, board.White))

	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(4, 0), board.White))
	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(0, 4), board.White))
	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(0, 0), board.White))
}

func TestRayAttackBlockedByIntervening(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(4, 4), board.NewPiece(board.Rook, board.White))
	pos.Set(board.NewSquare(4, 2), board.NewPiece(board.Pawn, board.Black))

	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(4, 0), board.White))
	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(4, 2), board.White))
}

func TestKnightAttack(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(4, 4), board.NewPiece(board.Knight, board.White))

	assert.True(t, rules.IsSquareAttacked(pos, board.NewSquare(2, 3), board.White))
	assert.False(t, rules.IsSquareAttacked(pos, board.NewSquare(4, 2), board.White))
}

func TestIsKingInCheck(t *testing.T) {
	pos := board.New()
	pos.Set(board.NewSquare(0, 4), board.NewPiece(board.King, board.Black))
	pos.Set(board.NewSquare(4, 4), board.NewPiece(board.Rook, board.White))

	assert.True(t, rules.IsKingInCheck(pos, board.Black))
	assert.False(t, rules.IsKingInCheck(pos, board.White))
}

func TestIsKingInCheckAbsentKing(t *testing.T) {
	pos := board.New()
	assert.False(t, rules.IsKingInCheck(pos, board.White))
}
