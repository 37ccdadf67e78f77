package search

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/movegen"
)

// quiescence extends the search through captures (and en passant) only, to
// avoid horizon distortion on tactical positions. The static stand-pat
// score bounds the search from below.
func (s *Searcher) quiescence(pos *board.Position, alpha, beta board.Score) board.Score {
	s.nodes++

	standPat := s.signedEval(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.LegalMoves(pos)
	OrderMoves(pos, moves)

	for _, m := range moves {
		if pos.IsEmpty(m.To) && m.Flag != board.EnPassantFlag {
			continue // quiescence considers only captures
		}

		movegen.Apply(pos, m)
		val := -s.quiescence(pos, -beta, -alpha)
		movegen.Revert(pos, m)

		if val >= beta {
			return beta
		}
		if val > alpha {
			alpha = val
		}
	}
	return alpha
}
