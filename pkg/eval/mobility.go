package eval

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/movegen"
)

// mobilityWeight is the centipawn bonus per extra pseudo-legal move.
const mobilityWeight = 2

// Mobility returns a small bonus proportional to White's pseudo-legal move
// count minus Black's, from White's perspective. Pseudo-legal rather than
// legal moves are used deliberately: running the legality filter here would
// make every leaf evaluation pay for a full make/undo pass, defeating the
// point of a cheap static evaluator.
func Mobility(pos *board.Position) int {
	sideToMove := pos.SideToMove

	pos.SideToMove = board.White
	white := movegen.PseudoLegal(pos).Len()

	pos.SideToMove = board.Black
	black := movegen.PseudoLegal(pos).Len()

	pos.SideToMove = sideToMove

	return (white - black) * mobilityWeight
}
