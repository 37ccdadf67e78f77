package movegen

import "github.com/larkspur-chess/engine/pkg/board"

// InsufficientMaterial returns true iff the board contains only kings. This
// is a deliberately narrow draw heuristic: KB-vs-K and KN-vs-K are not
// treated as drawn.
func InsufficientMaterial(pos *board.Position) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := pos.At(board.NewSquare(r, c))
			if !p.IsEmpty() && p.Kind != board.King {
				return false
			}
		}
	}
	return true
}
