package board_test

import (
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestParseMoveNormal(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(6, 4), m.From)
	assert.Equal(t, board.NewSquare(4, 4), m.To)
	assert.Equal(t, board.Normal, m.Flag)
	assert.Equal(t, "e2e4", m.String())
}

func TestParseMovePromotion(t *testing.T) {
	m, err := board.ParseMove("a7a8q")
	assert.NoError(t, err)
	assert.Equal(t, board.PromotionFlag, m.Flag)
	assert.Equal(t, board.Queen, m.Promotion)
	assert.Equal(t, "a7a8q", m.String())
}

func TestParseMoveInvalid(t *testing.T) {
	_, err := board.ParseMove("e2e4x")
	assert.Error(t, err)
	_, err = board.ParseMove("e2")
	assert.Error(t, err)
	_, err = board.ParseMove("e2e4k") // king is not a valid promotion
	assert.Error(t, err)
}

func TestMoveEquals(t *testing.T) {
	a, _ := board.ParseMove("e2e4")
	b, _ := board.ParseMove("e2e4")
	assert.True(t, a.Equals(b))

	c, _ := board.ParseMove("e2e3")
	assert.False(t, a.Equals(c))
}

func TestNullMove(t *testing.T) {
	assert.True(t, board.NullMove.IsNull())
	assert.Equal(t, "0000", board.NullMove.String())
}
