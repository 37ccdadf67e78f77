package board

import "strings"

// Castling represents the set of castling rights as a 4-bit mask: WK, WQ,
// BK, BQ. Rights only monotonically decrease over a game, except that
// Revert restores them.
type Castling uint8

const (
	WK Castling = 1 << iota
	WQ
	BK
	BQ
)

// AllCastlingRights is the starting-position mask.
const AllCastlingRights = WK | WQ | BK | BQ

// Has returns true iff all the given rights are set.
func (c Castling) Has(right Castling) bool {
	return c&right == right
}

// Clear returns the mask with the given rights removed.
func (c Castling) Clear(right Castling) Castling {
	return c &^ right
}

// ForColor returns the kingside and queenside rights belonging to color.
func ForColor(c Color) (kingside, queenside Castling) {
	if c == Black {
		return BK, BQ
	}
	return WK, WQ
}

func (c Castling) String() string {
	if c == 0 {
		return "-"
	}

	var sb strings.Builder
	if c.Has(WK) {
		sb.WriteString("K")
	}
	if c.Has(WQ) {
		sb.WriteString("Q")
	}
	if c.Has(BK) {
		sb.WriteString("k")
	}
	if c.Has(BQ) {
		sb.WriteString("q")
	}
	return sb.String()
}

// ParseCastling parses a castling rights string, e.g. "KQkq" or "-".
func ParseCastling(str string) (Castling, bool) {
	if str == "-" {
		return 0, true
	}
	var c Castling
	for _, r := range str {
		switch r {
		case 'K':
			c |= WK
		case 'Q':
			c |= WQ
		case 'k':
			c |= BK
		case 'q':
			c |= BQ
		default:
			return 0, false
		}
	}
	return c, true
}
