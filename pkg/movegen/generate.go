// Package movegen implements the move machine: pseudo-legal generation per
// piece kind, the legality filter built on make/undo plus the rules
// oracle, move application and its inverse, and the auxiliary
// insufficient-material draw heuristic.
package movegen

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/rules"
)

var promotionKinds = [4]board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight}

// PseudoLegal generates every move the side to move could make by piece
// geometry alone, without testing whether it leaves the mover's own king in
// check.
func PseudoLegal(pos *board.Position) *board.MoveList {
	list := board.NewMoveList()
	side := pos.SideToMove

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sq := board.NewSquare(r, c)
			p := pos.At(sq)
			if p.IsEmpty() || p.Color != side {
				continue
			}
			switch p.Kind {
			case board.Pawn:
				genPawnMoves(pos, sq, side, list)
			case board.Knight:
				genOffsetMoves(pos, sq, side, knightOffsets8, list)
			case board.Bishop:
				genSlidingMoves(pos, sq, side, diagonalDirs4, list)
			case board.Rook:
				genSlidingMoves(pos, sq, side, orthogonalDirs4, list)
			case board.Queen:
				genSlidingMoves(pos, sq, side, diagonalDirs4, list)
				genSlidingMoves(pos, sq, side, orthogonalDirs4, list)
			case board.King:
				genOffsetMoves(pos, sq, side, kingOffsets8, list)
				genCastling(pos, sq, side, list)
			}
		}
	}
	return list
}

var (
	diagonalDirs4   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirs4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightOffsets8  = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets8 = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// add applies the generator's add-move guard: drop destinations off-board
// or occupied by a same-color piece. En passant is handled by its own
// call site since its destination is empty by construction.
func add(pos *board.Position, side board.Color, m board.Move, list *board.MoveList) {
	if !m.To.IsValid() {
		return
	}
	if target := pos.At(m.To); !target.IsEmpty() && target.Color == side {
		return
	}
	list.Add(m)
}

func genOffsetMoves(pos *board.Position, from board.Square, side board.Color, offsets [8][2]int, list *board.MoveList) {
	for _, d := range offsets {
		to := board.NewSquare(from.Row+d[0], from.Col+d[1])
		add(pos, side, board.Move{From: from, To: to, Flag: board.Normal}, list)
	}
}

func genSlidingMoves(pos *board.Position, from board.Square, side board.Color, dirs [4][2]int, list *board.MoveList) {
	for _, d := range dirs {
		to := board.NewSquare(from.Row+d[0], from.Col+d[1])
		for to.IsValid() {
			target := pos.At(to)
			if target.IsEmpty() {
				list.Add(board.Move{From: from, To: to, Flag: board.Normal})
			} else {
				if target.Color != side {
					list.Add(board.Move{From: from, To: to, Flag: board.Normal})
				}
				break
			}
			to = board.NewSquare(to.Row+d[0], to.Col+d[1])
		}
	}
}

func genPawnMoves(pos *board.Position, from board.Square, side board.Color, list *board.MoveList) {
	d := -1
	startRow := 6
	promoRow := 0
	if side == board.Black {
		d = 1
		startRow = 1
		promoRow = 7
	}

	emit := func(to board.Square, flag board.MoveFlag) {
		if to.Row == promoRow {
			for _, k := range promotionKinds {
				list.Add(board.Move{From: from, To: to, Promotion: k, Flag: board.PromotionFlag})
			}
			return
		}
		list.Add(board.Move{From: from, To: to, Flag: flag})
	}

	// Single push.
	single := board.NewSquare(from.Row+d, from.Col)
	if single.IsValid() && pos.IsEmpty(single) {
		emit(single, board.Normal)

		// Double push: only from the start row, both intermediate and
		// destination squares empty.
		if from.Row == startRow {
			double := board.NewSquare(from.Row+2*d, from.Col)
			if pos.IsEmpty(double) {
				list.Add(board.Move{From: from, To: double, Flag: board.Normal})
			}
		}
	}

	// Diagonal captures and en passant.
	for _, dc := range [2]int{-1, 1} {
		to := board.NewSquare(from.Row+d, from.Col+dc)
		if !to.IsValid() {
			continue
		}
		target := pos.At(to)
		if !target.IsEmpty() && target.Color != side {
			emit(to, board.Normal)
			continue
		}
		if target.IsEmpty() && to == pos.EnPassant {
			list.Add(board.Move{From: from, To: to, Flag: board.EnPassantFlag})
		}
	}
}

// genCastling generates castling moves for the king at from, if the side to
// move is not in check and the squares between king and rook are empty and
// unattacked along the king's path.
func genCastling(pos *board.Position, from board.Square, side board.Color, list *board.MoveList) {
	homeRow := 7
	if side == board.Black {
		homeRow = 0
	}
	if from.Row != homeRow || from.Col != 4 {
		return
	}
	if rules.IsSquareAttacked(pos, from, side.Opponent()) {
		return
	}

	kingside, queenside := board.ForColor(side)

	if pos.Castling.Has(kingside) {
		f := board.NewSquare(homeRow, 5)
		g := board.NewSquare(homeRow, 6)
		if pos.IsEmpty(f) && pos.IsEmpty(g) &&
			!rules.IsSquareAttacked(pos, f, side.Opponent()) &&
			!rules.IsSquareAttacked(pos, g, side.Opponent()) {
			list.Add(board.Move{From: from, To: board.NewSquare(homeRow, 6), Flag: board.CastleKing})
		}
	}
	if pos.Castling.Has(queenside) {
		b := board.NewSquare(homeRow, 1)
		c := board.NewSquare(homeRow, 2)
		dSq := board.NewSquare(homeRow, 3)
		if pos.IsEmpty(b) && pos.IsEmpty(c) && pos.IsEmpty(dSq) &&
			!rules.IsSquareAttacked(pos, c, side.Opponent()) &&
			!rules.IsSquareAttacked(pos, dSq, side.Opponent()) {
			list.Add(board.Move{From: from, To: board.NewSquare(homeRow, 2), Flag: board.CastleQueen})
		}
	}
}
