// Package search implements the adversarial search: negamax with
// alpha-beta pruning at a fixed depth, quiescence extension at leaves,
// MVV-LVA move ordering, mate-distance scoring and a check-extension rule.
// Grounded on herohde/morlock's pkg/search, simplified to a
// single fixed-depth negamax: no transposition table, no iterative
// deepening, no time control.
package search

import "github.com/larkspur-chess/engine/pkg/board"

// MateValue is chosen far below Infinity so that MateValue - ply never
// overflows and the encoding is reversible through negation at every ply
// of the recursion.
const (
	Infinity  board.Score = 1_000_000
	MateValue board.Score = Infinity - 1000
)

// IsMateScore reports whether s encodes a forced mate (for or against the
// side the score favors).
func IsMateScore(s board.Score) bool {
	return s >= MateValue-1000 || s <= -(MateValue-1000)
}
