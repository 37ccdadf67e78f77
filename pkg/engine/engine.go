// Package engine ties the position, rules, move generation, evaluation and
// search packages together into a single engine-facing contract: load,
// save, enumerate legal moves, apply, revert, find the best move. Grounded
// on herohde/morlock's pkg/engine, simplified to a single synchronous search
// with no launcher, no transposition table, and no iterative deepening.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/movegen"
	"github.com/larkspur-chess/engine/pkg/posfile"
	"github.com/larkspur-chess/engine/pkg/rules"
	"github.com/larkspur-chess/engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options configures engine creation.
type Options struct {
	// Depth is the fixed search depth. Zero selects search.DefaultDepth.
	Depth uint
	// NoQuiescence disables the quiescence extension at search leaves.
	// False (the zero value) keeps quiescence enabled, matching
	// search.New's default.
	NoQuiescence bool
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v noQuiescence=%v}", o.Depth, o.NoQuiescence)
}

// Engine holds the current Position and the searcher used to pick moves.
// Methods are safe for concurrent use since the console driver and any
// future caller may share one Engine value.
type Engine struct {
	name, author string

	opts Options
	pos  *board.Position
	s    *search.Searcher

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the initial runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// New constructs an engine at the default starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}

	depth := search.DefaultDepth
	if e.opts.Depth > 0 {
		depth = int(e.opts.Depth)
	}
	e.s = search.New(depth)
	e.s.Quiescence = !e.opts.NoQuiescence
	e.pos = board.NewDefault()

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// SetDepth overrides the search depth used by FindBestMove.
func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
	if depth > 0 {
		e.s.Depth = int(depth)
	}
}

// Position returns the current position. Callers must not mutate it other
// than through the Engine's own methods.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos
}

// Load reads a position from path and replaces the engine's current
// position on success. On failure the engine's position is left unchanged.
func (e *Engine) Load(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := posfile.Load(path)
	if err != nil {
		logw.Errorf(ctx, "Load %v failed: %v", path, err)
		return err
	}
	e.pos = pos

	logw.Infof(ctx, "Loaded %v", path)
	return nil
}

// Save writes the engine's current position to path.
func (e *Engine) Save(ctx context.Context, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := posfile.Save(path, e.pos); err != nil {
		logw.Errorf(ctx, "Save %v failed: %v", path, err)
		return err
	}

	logw.Infof(ctx, "Saved %v", path)
	return nil
}

// LegalMoves returns the legal moves in the current position.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return movegen.LegalMoves(e.pos)
}

// Move parses a long algebraic move string, resolves it against the legal
// moves of the current position, applies it and returns it. A 4-character
// string whose source/target form a promoting pawn move is silently
// resolved to a Queen promotion.
func (e *Engine) Move(ctx context.Context, move string) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return board.NullMove, fmt.Errorf("unparseable move %q: %w", move, err)
	}

	for _, m := range movegen.LegalMoves(e.pos) {
		if !candidateMatches(candidate, m) {
			continue
		}
		movegen.Apply(e.pos, m)
		logw.Infof(ctx, "Applied %v", m)
		return m, nil
	}
	return board.NullMove, fmt.Errorf("illegal move %q", move)
}

// candidateMatches reports whether a parsed move (which may omit the
// promotion piece on a 4-character input) resolves to m.
func candidateMatches(candidate, m board.Move) bool {
	if candidate.From != m.From || candidate.To != m.To {
		return false
	}
	if m.Flag != board.PromotionFlag {
		return true
	}
	if candidate.Flag != board.PromotionFlag {
		return true // bare 4-char move: the first promotion generated, the queen, matches
	}
	return candidate.Promotion == m.Promotion
}

// Apply applies a move already known to be legal. Precondition: m is legal
// in the current position; violations are undefined behavior.
func (e *Engine) Apply(m board.Move) {
	e.mu.Lock()
	defer e.mu.Unlock()

	movegen.Apply(e.pos, m)
}

// Revert undoes the most recent Apply. Precondition: m matches the prior
// Apply call.
func (e *Engine) Revert(m board.Move) {
	e.mu.Lock()
	defer e.mu.Unlock()

	movegen.Revert(e.pos, m)
}

// FindBestMove runs the search and returns its choice for the current
// position. A null move means the side to move has no legal moves: the
// game has ended in checkmate or stalemate.
func (e *Engine) FindBestMove(ctx context.Context) search.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := search.Run(e.s)(e.pos)

	logw.Infof(ctx, "Search %v: %v", e.pos, r)
	return r
}

// Result reports the engine's current game status: checkmate, stalemate,
// a material draw, or undecided.
func (e *Engine) Result() board.GameResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(movegen.LegalMoves(e.pos)) > 0 {
		if movegen.InsufficientMaterial(e.pos) {
			return board.Draw
		}
		return board.Undecided
	}
	if rules.IsKingInCheck(e.pos, e.pos.SideToMove) {
		return board.Checkmate
	}
	return board.Stalemate
}
