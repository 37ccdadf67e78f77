// Package board defines the chess position representation: squares, pieces,
// castling rights, moves, and the reversible-history Position type that the
// move machine mutates in place.
package board

import (
	"fmt"
	"strings"
)

// Position is a value-typed chess board plus the metadata needed to
// generate and apply moves: side to move, castling rights, en passant
// target, halfmove clock, and fullmove number. It carries no rule logic of
// its own beyond the raw accessors below; legality lives in pkg/rules and
// pkg/movegen.
//
// The reversible-history stack is attached to the Position rather than
// kept as process-wide state, so each Position is independently
// make/undo-able.
type Position struct {
	squares        [8][8]Piece
	SideToMove     Color
	Castling       Castling
	EnPassant      Square
	HalfmoveClock  uint32
	FullmoveNumber uint32

	history *History
}

// New returns an empty position (no pieces) with White to move, full
// castling rights, no en passant target, and a fresh history stack.
func New() *Position {
	p := &Position{
		SideToMove:     White,
		Castling:       AllCastlingRights,
		EnPassant:      NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
		history:        NewHistory(),
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p.squares[r][c] = NoPiece
		}
	}
	return p
}

// NewDefault returns the standard chess starting position.
func NewDefault() *Position {
	p := New()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for c := 0; c < 8; c++ {
		p.Set(Square{Row: 0, Col: c}, NewPiece(backRank[c], Black))
		p.Set(Square{Row: 1, Col: c}, NewPiece(Pawn, Black))
		p.Set(Square{Row: 6, Col: c}, NewPiece(Pawn, White))
		p.Set(Square{Row: 7, Col: c}, NewPiece(backRank[c], White))
	}
	return p
}

// At returns the piece occupying sq. Returns NoPiece for an off-board or
// empty square.
func (p *Position) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq.Row][sq.Col]
}

// Set places piece p on sq, overwriting whatever was there.
func (p *Position) Set(sq Square, piece Piece) {
	p.squares[sq.Row][sq.Col] = piece
}

// IsEmpty returns true iff sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.At(sq).IsEmpty()
}

// History returns the move machine's reversible-history stack for this
// position.
func (p *Position) History() *History {
	return p.history
}

// FindKing returns the square of color's king, and false if absent (a
// malformed position can transiently lack one; callers are expected to
// handle that case).
func (p *Position) FindKing(c Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			pc := p.squares[r][col]
			if pc.Kind == King && pc.Color == c {
				return Square{Row: r, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Clone returns a deep copy of the position, including a fresh (empty)
// history stack, for a caller that needs to reason about a position
// without affecting the original's make/undo stack.
func (p *Position) Clone() *Position {
	c := *p
	c.history = NewHistory()
	return &c
}

// String renders the board 8 rows top-to-bottom (rank 8 first), plus side
// to move, castling rights and en passant target, for debugging and
// logging.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sb.WriteString(p.squares[r][c].String())
		}
		sb.WriteString("/")
	}
	return fmt.Sprintf("%s %v %v(%v) hm=%d fm=%d", sb.String(), p.SideToMove, p.Castling, p.EnPassant, p.HalfmoveClock, p.FullmoveNumber)
}
