package search

import (
	"fmt"

	"github.com/larkspur-chess/engine/pkg/board"
)

// Result reports a completed search: the chosen move, its score from the
// root side to move's perspective, and the node count, for the console
// driver to print.
type Result struct {
	Move  board.Move
	Score board.Score
	Nodes uint64
	Depth int
}

func (r Result) String() string {
	return fmt.Sprintf("depth=%d score=%v nodes=%d move=%v", r.Depth, r.Score, r.Nodes, r.Move)
}

// Run searches pos at the searcher's configured depth and returns a Result.
// A null Result.Move means the side to move has no legal moves.
func Run(s *Searcher) func(*board.Position) Result {
	return func(pos *board.Position) Result {
		m, v := s.FindBestMove(pos)
		return Result{Move: m, Score: v, Nodes: s.Nodes(), Depth: s.Depth}
	}
}
