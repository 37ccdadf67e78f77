package search

import (
	"sort"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/eval"
)

// ScoreMove computes an MVV-LVA move ordering score: 10,000 + victim value
// - attacker value/10 for captures, 9,000 for non-capturing promotions, 0
// otherwise (including en passant, a known mild suboptimality since it
// scores as a quiet move despite being a capture).
func ScoreMove(pos *board.Position, m board.Move) int {
	target := pos.At(m.To)
	if !target.IsEmpty() {
		attacker := pos.At(m.From)
		return 10_000 + eval.NominalValue(target.Kind) - eval.NominalValue(attacker.Kind)/10
	}
	if m.Flag == board.PromotionFlag {
		return 9_000
	}
	return 0
}

// OrderMoves sorts moves by descending MVV-LVA score, stable so that moves
// of equal score keep generation order.
func OrderMoves(pos *board.Position, moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return ScoreMove(pos, moves[i]) > ScoreMove(pos, moves[j])
	})
}
