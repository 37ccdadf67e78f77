package posfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larkspur-chess/engine/pkg/board"
	"github.com/larkspur-chess/engine/pkg/posfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "position.txt")

	pos := board.NewDefault()
	require.NoError(t, posfile.Save(path, pos))

	loaded, err := posfile.Load(path)
	require.NoError(t, err)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sq := board.NewSquare(r, c)
			assert.Equal(t, pos.At(sq), loaded.At(sq))
		}
	}
	assert.Equal(t, pos.SideToMove, loaded.SideToMove)
	assert.Equal(t, pos.Castling, loaded.Castling)
	assert.Equal(t, pos.EnPassant, loaded.EnPassant)
	assert.Equal(t, pos.HalfmoveClock, loaded.HalfmoveClock)
	assert.Equal(t, pos.FullmoveNumber, loaded.FullmoveNumber)
}

func TestLoadRejectsShortRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")

	content := "rnbqkbnr\npppppppp\n........\n........\n........\n.......\nPPPPPPPP\nRNBQKBNR\nw\nKQkq\n-\n0\n1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := posfile.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "truncated.txt")

	content := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\nw\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := posfile.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := posfile.Load(filepath.Join(t.TempDir(), "nonexistent.txt"))
	assert.Error(t, err)
}

func TestLoadEnPassantTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ep.txt")

	content := "rnbqkbnr\npp.ppppp\n........\n..pP....\n........\n........\nPPP.PPPP\nRNBQKBNR\nw\nKQkq\nc6\n0\n3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pos, err := posfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(2, 2), pos.EnPassant)
}
