// Package rules implements static queries on a position: whether a square
// is attacked by a given color, and whether a color's king is in check.
// These are the only two queries the rest of the engine needs to reason
// about check, castling legality and move legality.
package rules

import "github.com/larkspur-chess/engine/pkg/board"

// diagonalDirs and orthogonalDirs enumerate the eight ray directions, four
// diagonals followed by four orthogonals.
var (
	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// IsSquareAttacked returns true iff any piece of color attacker could
// capture on sq under pseudo-legal movement rules, assuming sq is occupied.
// Attacks are purely geometric: the presence of a defender on sq is
// irrelevant.
func IsSquareAttacked(pos *board.Position, sq board.Square, attacker board.Color) bool {
	for _, d := range diagonalDirs {
		if rayAttacks(pos, sq, d, attacker, board.Bishop) {
			return true
		}
	}
	for _, d := range orthogonalDirs {
		if rayAttacks(pos, sq, d, attacker, board.Rook) {
			return true
		}
	}
	for _, d := range knightOffsets {
		from := board.NewSquare(sq.Row+d[0], sq.Col+d[1])
		if !from.IsValid() {
			continue
		}
		if p := pos.At(from); p.Kind == board.Knight && p.Color == attacker {
			return true
		}
	}
	for _, d := range kingOffsets {
		from := board.NewSquare(sq.Row+d[0], sq.Col+d[1])
		if !from.IsValid() {
			continue
		}
		if p := pos.At(from); p.Kind == board.King && p.Color == attacker {
			return true
		}
	}

	// Pawn attacks: a pawn of color attacker attacks diagonally forward from
	// its own perspective. A White pawn moves toward row-1, so it attacks
	// from (row+1, col±1); a Black pawn attacks from (row-1, col±1).
	d := 1
	if attacker == board.Black {
		d = -1
	}
	for _, dc := range [2]int{-1, 1} {
		from := board.NewSquare(sq.Row+d, sq.Col+dc)
		if !from.IsValid() {
			continue
		}
		if p := pos.At(from); p.Kind == board.Pawn && p.Color == attacker {
			return true
		}
	}
	return false
}

// rayAttacks walks outward from sq along direction dir. The first
// non-empty square blocks further progress; if it belongs to attacker and
// its kind matches the ray type (Queen always qualifies; kind must equal
// the requested slider kind otherwise), sq is attacked.
func rayAttacks(pos *board.Position, sq board.Square, dir [2]int, attacker board.Color, sliderKind board.Kind) bool {
	cur := board.NewSquare(sq.Row+dir[0], sq.Col+dir[1])
	for cur.IsValid() {
		p := pos.At(cur)
		if !p.IsEmpty() {
			if p.Color == attacker && (p.Kind == board.Queen || p.Kind == sliderKind) {
				return true
			}
			return false
		}
		cur = board.NewSquare(cur.Row+dir[0], cur.Col+dir[1])
	}
	return false
}

// IsKingInCheck finds color's king and reports whether it is attacked by
// the opposing color. Returns false if color has no king on the board.
func IsKingInCheck(pos *board.Position, color board.Color) bool {
	k, ok := pos.FindKing(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, k, color.Opponent())
}
