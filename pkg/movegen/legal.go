package movegen

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/rules"
)

// LegalMoves generates every pseudo-legal move for the side to move and
// retains only those that do not leave the mover's own king in check and
// do not capture a king. This is the set used both by the CLI (to match
// user input) and by search.
func LegalMoves(pos *board.Position) []board.Move {
	pseudo := PseudoLegal(pos).Moves()
	mover := pos.SideToMove

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if pos.At(m.To).Kind == board.King {
			continue // kings are never captured
		}

		Apply(pos, m)
		inCheck := rules.IsKingInCheck(pos, mover)
		Revert(pos, m)

		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
