// Package posfile reads and writes a plain-text position format: eight
// board rows, side to move, castling rights, en passant target, halfmove
// clock and fullmove number, one per line. Grounded on the line-oriented
// parse-and-wrap style of herohde/morlock's pkg/board/fen package.
package posfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/larkspur-chess/engine/pkg/board"
)

// Load reads a position from path into a freshly constructed Position. It
// fails if any of the eight board rows is shorter than 8 characters, any
// required line is missing, or a field fails to parse.
func Load(path string) (*board.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("posfile: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("posfile: read %s: %w", path, err)
	}
	if len(lines) < 13 {
		return nil, fmt.Errorf("posfile: %s: expected 13 lines, got %d", path, len(lines))
	}

	pos := board.New()

	for row := 0; row < 8; row++ {
		line := lines[row]
		if len(line) < 8 {
			return nil, fmt.Errorf("posfile: %s: row %d shorter than 8 characters: %q", path, row, line)
		}
		for col := 0; col < 8; col++ {
			ch := rune(line[col])
			if ch == '.' {
				pos.Set(board.NewSquare(row, col), board.NoPiece)
				continue
			}
			kind, ok := board.ParseKind(ch)
			if !ok {
				return nil, fmt.Errorf("posfile: %s: row %d: invalid piece character %q", path, row, ch)
			}
			color := board.White
			if ch >= 'a' && ch <= 'z' {
				color = board.Black
			}
			pos.Set(board.NewSquare(row, col), board.NewPiece(kind, color))
		}
	}

	side := strings.TrimSpace(lines[8])
	switch side {
	case "w":
		pos.SideToMove = board.White
	case "b":
		pos.SideToMove = board.Black
	default:
		return nil, fmt.Errorf("posfile: %s: invalid side to move %q", path, side)
	}

	castling := strings.TrimSpace(lines[9])
	c, ok := board.ParseCastling(castling)
	if !ok {
		return nil, fmt.Errorf("posfile: %s: invalid castling rights %q", path, castling)
	}
	pos.Castling = c

	ep := strings.TrimSpace(lines[10])
	if ep == "-" {
		pos.EnPassant = board.NoSquare
	} else {
		sq, err := board.ParseSquare(ep)
		if err != nil {
			return nil, fmt.Errorf("posfile: %s: invalid en passant target: %w", path, err)
		}
		pos.EnPassant = sq
	}

	half, err := strconv.ParseUint(strings.TrimSpace(lines[11]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("posfile: %s: invalid halfmove clock: %w", path, err)
	}
	pos.HalfmoveClock = uint32(half)

	full, err := strconv.ParseUint(strings.TrimSpace(lines[12]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("posfile: %s: invalid fullmove number: %w", path, err)
	}
	pos.FullmoveNumber = uint32(full)

	return pos, nil
}

// Save writes exactly the 13 lines describing pos to path, creating or
// truncating the file.
func Save(path string, pos *board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("posfile: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for row := 0; row < 8; row++ {
		var sb strings.Builder
		for col := 0; col < 8; col++ {
			p := pos.At(board.NewSquare(row, col))
			if p.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(p.String())
		}
		fmt.Fprintln(w, sb.String())
	}

	if pos.SideToMove == board.White {
		fmt.Fprintln(w, "w")
	} else {
		fmt.Fprintln(w, "b")
	}

	fmt.Fprintln(w, pos.Castling.String())

	if pos.EnPassant.IsNull() {
		fmt.Fprintln(w, "-")
	} else {
		fmt.Fprintln(w, pos.EnPassant.String())
	}

	fmt.Fprintln(w, pos.HalfmoveClock)
	fmt.Fprintln(w, pos.FullmoveNumber)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("posfile: write %s: %w", path, err)
	}
	return nil
}
