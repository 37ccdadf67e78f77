package movegen

import "github.com/larkspur-chess/engine/pkg/board"

// Apply mutates pos in place per m and pushes a history record so Revert
// can undo it. Precondition: m is one of LegalMoves(pos); this is not
// checked, matching herohde/morlock's contract style.
func Apply(pos *board.Position, m board.Move) {
	mover := pos.At(m.From)
	side := pos.SideToMove

	rec := board.Record{
		Move:           m,
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
		SideToMove:     side,
	}

	switch m.Flag {
	case board.CastleKing, board.CastleQueen:
		rec.Captured = board.NoPiece

		rookFrom, rookTo := castleRookSquares(m)
		rook := pos.At(rookFrom)

		pos.Set(m.From, board.NoPiece)
		pos.Set(m.To, mover)
		pos.Set(rookFrom, board.NoPiece)
		pos.Set(rookTo, rook)

		clearCastlingRights(pos, side)
		pos.EnPassant = board.NoSquare
		pos.HalfmoveClock = 0

	case board.EnPassantFlag:
		capturedSq := board.NewSquare(m.To.Row+oppositeDir(side), m.To.Col)
		rec.Captured = pos.At(capturedSq)

		pos.Set(m.From, board.NoPiece)
		pos.Set(m.To, mover)
		pos.Set(capturedSq, board.NoPiece)

		pos.EnPassant = board.NoSquare
		pos.HalfmoveClock = 0

	case board.PromotionFlag:
		rec.Captured = pos.At(m.To)

		pos.Set(m.From, board.NoPiece)
		pos.Set(m.To, board.NewPiece(m.Promotion, side))

		pos.EnPassant = board.NoSquare
		pos.HalfmoveClock = 0

	default: // Normal
		rec.Captured = pos.At(m.To)

		wasPawn := mover.Kind == board.Pawn
		isCapture := !rec.Captured.IsEmpty()

		pos.Set(m.From, board.NoPiece)
		pos.Set(m.To, mover)

		if wasPawn && abs(m.To.Row-m.From.Row) == 2 {
			pos.EnPassant = board.NewSquare((m.From.Row+m.To.Row)/2, m.From.Col)
		} else {
			pos.EnPassant = board.NoSquare
		}

		if isCapture || wasPawn {
			pos.HalfmoveClock = 0
		} else {
			pos.HalfmoveClock++
		}
	}

	// Castling rights bookkeeping independent of move flag.
	if mover.Kind == board.King {
		kingside, queenside := board.ForColor(side)
		pos.Castling = pos.Castling.Clear(kingside).Clear(queenside)
		pos.HalfmoveClock = 0 // reset on any king move, including non-castling.
	}
	if mover.Kind == board.Rook {
		clearRookCastlingRight(pos, side, m.From)
	}
	if !rec.Captured.IsEmpty() && m.Flag != board.EnPassantFlag {
		clearRookCastlingRight(pos, rec.Captured.Color, m.To)
	}

	if side == board.Black {
		pos.FullmoveNumber++
	}
	pos.SideToMove = side.Opponent()

	pos.History().Push(rec)
}

// Revert pops the most recent history record and restores the exact
// pre-move position. Precondition: m matches the move Apply was last
// called with on pos.
func Revert(pos *board.Position, m board.Move) {
	rec, ok := pos.History().Pop()
	if !ok {
		panic("revert with no matching apply")
	}

	pos.SideToMove = rec.SideToMove
	pos.Castling = rec.Castling
	pos.EnPassant = rec.EnPassant
	pos.HalfmoveClock = rec.HalfmoveClock
	pos.FullmoveNumber = rec.FullmoveNumber

	side := rec.SideToMove

	switch m.Flag {
	case board.CastleKing, board.CastleQueen:
		king := pos.At(m.To)
		rookFrom, rookTo := castleRookSquares(m)
		rook := pos.At(rookTo)

		pos.Set(m.To, board.NoPiece)
		pos.Set(m.From, king)
		pos.Set(rookTo, board.NoPiece)
		pos.Set(rookFrom, rook)

	case board.EnPassantFlag:
		pawn := pos.At(m.To)
		capturedSq := board.NewSquare(m.To.Row+oppositeDir(side), m.To.Col)

		pos.Set(m.To, board.NoPiece)
		pos.Set(m.From, pawn)
		pos.Set(capturedSq, rec.Captured)

	case board.PromotionFlag:
		pos.Set(m.To, rec.Captured)
		pos.Set(m.From, board.NewPiece(board.Pawn, side))

	default: // Normal
		piece := pos.At(m.To)
		pos.Set(m.To, rec.Captured)
		pos.Set(m.From, piece)
	}
}

func castleRookSquares(m board.Move) (from, to board.Square) {
	row := m.From.Row
	if m.Flag == board.CastleKing {
		return board.NewSquare(row, 7), board.NewSquare(row, 5)
	}
	return board.NewSquare(row, 0), board.NewSquare(row, 3)
}

func clearCastlingRights(pos *board.Position, side board.Color) {
	kingside, queenside := board.ForColor(side)
	pos.Castling = pos.Castling.Clear(kingside).Clear(queenside)
}

// clearRookCastlingRight clears the castling right matching a rook moving
// from or being captured on a home corner. No-op if sq is not a corner.
func clearRookCastlingRight(pos *board.Position, side board.Color, sq board.Square) {
	homeRow := 7
	if side == board.Black {
		homeRow = 0
	}
	if sq.Row != homeRow {
		return
	}
	kingside, queenside := board.ForColor(side)
	switch sq.Col {
	case 7:
		pos.Castling = pos.Castling.Clear(kingside)
	case 0:
		pos.Castling = pos.Castling.Clear(queenside)
	}
}

func oppositeDir(side board.Color) int {
	if side == board.White {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
