package search

import (
	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/eval"
	"github.com/larkspur-chess/engine/pkg/movegen"
	"github.com/larkspur-chess/engine/pkg/rules"
)

// DefaultDepth is the fixed search depth used when no override is set.
const DefaultDepth = 6

// EvalFunc is the signature required of a static evaluator: deterministic,
// side-agnostic, a pure function of the position.
type EvalFunc func(*board.Position) board.Score

// Searcher runs a fixed-depth negamax search with alpha-beta pruning,
// quiescence at leaves, MVV-LVA ordering, check extension and
// mate-distance scoring.
type Searcher struct {
	Depth int
	Eval  EvalFunc

	// Quiescence enables the capture-only quiescence extension at leaf
	// nodes. True by default; disabling it trades tactical accuracy for
	// raw speed by stopping flat at the static evaluation.
	Quiescence bool

	nodes uint64
}

// New returns a Searcher at the given depth using the default evaluator,
// with quiescence enabled.
func New(depth int) *Searcher {
	return &Searcher{Depth: depth, Eval: eval.Evaluate, Quiescence: true}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// signedEval returns pos's static score from the perspective of the side to
// move: positive means the side to move is better off.
func (s *Searcher) signedEval(pos *board.Position) board.Score {
	return s.Eval(pos) * board.Score(pos.SideToMove.Unit())
}

// FindBestMove is the root search call: generate legal moves, order them,
// run negamax on each, keep the best. Returns the null move iff the side
// to move has no legal moves.
func (s *Searcher) FindBestMove(pos *board.Position) (board.Move, board.Score) {
	s.nodes = 0

	moves := movegen.LegalMoves(pos)
	if len(moves) == 0 {
		return board.NullMove, 0
	}
	OrderMoves(pos, moves)

	depth := s.Depth
	alpha, beta := -Infinity, Infinity

	best := moves[0]
	bestScore := -Infinity

	for _, m := range moves {
		movegen.Apply(pos, m)
		val := -s.negamax(pos, depth-1, -beta, -alpha, 1)
		movegen.Revert(pos, m)

		if val > bestScore {
			bestScore = val
			best = m
		}
		if val > alpha {
			alpha = val
		}
	}
	return best, bestScore
}

// negamax returns the score of pos for the side to move, searching depth
// plies (possibly extended) with the alpha-beta window [alpha, beta]. ply
// counts plies from the search root, used for mate-distance scoring.
func (s *Searcher) negamax(pos *board.Position, depth int, alpha, beta board.Score, ply int) board.Score {
	if pos.HalfmoveClock >= 100 || movegen.InsufficientMaterial(pos) {
		return 0
	}

	inCheck := rules.IsKingInCheck(pos, pos.SideToMove)
	if inCheck {
		depth++ // check extension: never terminate mid-threat.
	}

	if depth <= 0 {
		if s.Quiescence {
			return s.quiescence(pos, alpha, beta)
		}
		return s.signedEval(pos)
	}

	moves := movegen.LegalMoves(pos)
	if len(moves) == 0 {
		if inCheck {
			return -MateValue + board.Score(ply)
		}
		return 0 // stalemate
	}
	OrderMoves(pos, moves)

	s.nodes++

	best := -Infinity
	for _, m := range moves {
		movegen.Apply(pos, m)
		val := -s.negamax(pos, depth-1, -beta, -alpha, ply+1)
		movegen.Revert(pos, m)

		if val > best {
			best = val
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
