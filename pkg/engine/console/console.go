// Package console implements the text-based user loop: a synchronous
// read-eval-print loop over stdin/stdout, board pretty-printing and the
// save/quit/depth/help commands. Grounded on herohde/morlock's
// pkg/engine/console, simplified from a channel-driven async driver to a
// direct synchronous loop, since a single caller owns the engine at a time
// and there is no concurrent protocol to multiplex.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/engine"
	"github.com/seekerror/logw"
)

// DefaultSaveFile is the fixed path the "save" command writes to.
const DefaultSaveFile = "position.txt"

// Driver runs the text console loop over in/out until "quit" or EOF.
type Driver struct {
	e   *engine.Engine
	in  *bufio.Scanner
	out io.Writer
}

// NewDriver constructs a console driver reading commands from in and
// writing output to out.
func NewDriver(e *engine.Engine, in io.Reader, out io.Writer) *Driver {
	return &Driver{e: e, in: bufio.NewScanner(in), out: out}
}

// Run executes the loop to completion, returning the process exit code (0
// on normal termination).
func (d *Driver) Run(ctx context.Context) int {
	logw.Infof(ctx, "Console loop started")

	fmt.Fprintf(d.out, "%v (%v)\n", d.e.Name(), d.e.Author())
	d.printBoard()

	for {
		fmt.Fprint(d.out, "> ")
		if !d.in.Scan() {
			logw.Infof(ctx, "Input stream closed")
			return 0
		}

		line := strings.TrimSpace(d.in.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch strings.ToLower(cmd) {
		case "quit", "exit", "q":
			return 0

		case "save":
			if err := d.e.Save(ctx, DefaultSaveFile); err != nil {
				fmt.Fprintf(d.out, "save failed: %v\n", err)
			} else {
				fmt.Fprintf(d.out, "saved to %v\n", DefaultSaveFile)
			}

		case "load":
			path := DefaultSaveFile
			if len(args) > 0 {
				path = args[0]
			}
			if err := d.e.Load(ctx, path); err != nil {
				fmt.Fprintf(d.out, "load failed: %v\n", err)
			} else {
				d.printBoard()
			}

		case "depth":
			if len(args) == 0 {
				fmt.Fprintln(d.out, "usage: depth <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				fmt.Fprintf(d.out, "invalid depth: %v\n", args[0])
				continue
			}
			d.e.SetDepth(uint(n))
			fmt.Fprintf(d.out, "depth set to %v\n", n)

		case "help", "?":
			d.printHelp()

		case "go":
			d.engineMove(ctx)

		default:
			d.userMove(ctx, cmd)
		}
	}
}

func (d *Driver) userMove(ctx context.Context, token string) {
	if _, err := d.e.Move(ctx, token); err != nil {
		fmt.Fprintf(d.out, "invalid move: %v\n", err)
		return
	}
	d.printBoard()

	switch d.e.Result() {
	case board.Checkmate:
		fmt.Fprintln(d.out, "checkmate")
		return
	case board.Stalemate:
		fmt.Fprintln(d.out, "stalemate")
		return
	case board.Draw:
		fmt.Fprintln(d.out, "draw (insufficient material)")
	}
	d.engineMove(ctx)
}

func (d *Driver) engineMove(ctx context.Context) {
	r := d.e.FindBestMove(ctx)
	if r.Move.IsNull() {
		switch d.e.Result() {
		case board.Checkmate:
			fmt.Fprintln(d.out, "checkmate")
		default:
			fmt.Fprintln(d.out, "stalemate")
		}
		return
	}
	d.e.Apply(r.Move)
	fmt.Fprintf(d.out, "engine plays %v (%v, %v nodes)\n", r.Move, r.Score, r.Nodes)
	d.printBoard()
}

func (d *Driver) printHelp() {
	fmt.Fprintln(d.out, "commands: <move> (e.g. e2e4), go, save, load [path], depth <n>, quit")
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
)

func (d *Driver) printBoard() {
	pos := d.e.Position()

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, files)
	fmt.Fprintln(d.out, horizontal)
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d | ", 8-row)
		for col := 0; col < 8; col++ {
			sb.WriteString(pos.At(board.NewSquare(row, col)).String())
			sb.WriteString(" | ")
		}
		fmt.Fprintln(d.out, sb.String())
		fmt.Fprintln(d.out, horizontal)
	}
	fmt.Fprintln(d.out, files)
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, "side to move: %v\n", pos.SideToMove)
}
