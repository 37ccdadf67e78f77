// Package eval supplies a deterministic static position evaluator: a pure
// function of *board.Position returning a signed centipawn score, positive
// favoring White. It combines material, piece-square tables, mobility and
// a tapered middlegame/endgame blend, grounded on herohde/morlock's
// pkg/eval.Material and enriched with zurichess's tapered piece-square
// technique (engine/material.go, engine/psqt.go).
package eval

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Evaluate returns the static score of pos from White's perspective.
// Deterministic and side-agnostic: it inspects only pos.
func Evaluate(pos *board.Position) board.Score {
	phase := phaseWeight(pos)

	var material, positional int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := pos.At(board.NewSquare(r, c))
			if p.IsEmpty() {
				continue
			}

			sign := 1
			if p.Color == board.Black {
				sign = -1
			}

			material += sign * NominalValue(p.Kind)
			positional += sign * pieceSquareValue(p.Kind, p.Color, r, c, phase)
		}
	}

	mobility := Mobility(pos)

	return board.Score(material + positional + mobility)
}

// phaseWeight estimates how far into the endgame pos is, scaled to [0,256]
// from remaining non-pawn, non-king material. 256 is the opening, 0 is a
// bare-king endgame. Used to taper piece-square tables.
func phaseWeight(pos *board.Position) int {
	total := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			total += phaseContribution(pos.At(board.NewSquare(r, c)).Kind)
		}
	}
	const maxPhase = 24 // 4 knights + 4 bishops + 4 rooks + 2 queens, standard weights below
	total = mathx.Min(total, maxPhase)
	return total * 256 / maxPhase
}

func phaseContribution(k board.Kind) int {
	switch k {
	case board.Knight, board.Bishop:
		return 1
	case board.Rook:
		return 2
	case board.Queen:
		return 4
	default:
		return 0
	}
}
