package eval

import "github.com/larkspur-chess/engine/pkg/board"

// NominalValue is the centipawn value of a piece kind, matching the MVV-LVA
// piece values used for move ordering so ordering and evaluation agree.
func NominalValue(k board.Kind) int {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}
