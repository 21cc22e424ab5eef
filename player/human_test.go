package player

import (
	"fmt"
	"io"
	"isolation/game"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"
)

// scriptedHuman reads its moves from input instead of the terminal.
func scriptedHuman(t *testing.T, input string) *HumanPlayer {
	t.Helper()
	p, err := newHumanPlayer(&readline.Config{
		Stdin:          io.NopCloser(strings.NewReader(input)),
		Stdout:         io.Discard,
		Stderr:         io.Discard,
		FuncIsTerminal: func() bool { return false },
		FuncMakeRaw:    func() error { return nil },
		FuncExitRaw:    func() error { return nil },
		FuncGetWidth:   func() int { return 80 },

		FuncOnWidthChanged: func(func()) {},
	})
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func formatMove(m game.Move) string {
	return fmt.Sprintf("%d %d", m.Row, m.Col)
}

func TestHumanPlayer(t *testing.T) {
	t.Run("plays the typed move", func(t *testing.T) {
		board := midgame()
		want := board.LegalMoves()[0]
		p := scriptedHuman(t, formatMove(want)+"\n")

		move, _ := p.FindMove(board, unlimited)

		require.Equal(t, want, move)
	})

	t.Run("asks again after bad and illegal input", func(t *testing.T) {
		board := midgame()
		want := board.LegalMoves()[0]
		p := scriptedHuman(t, "nonsense\n3 3\n"+formatMove(want)+"\n")

		move, _ := p.FindMove(board, unlimited)

		require.Equal(t, want, move)
	})

	t.Run("end of input forfeits", func(t *testing.T) {
		p := scriptedHuman(t, "")

		move, _ := p.FindMove(midgame(), unlimited)

		require.Equal(t, game.NoMove, move)
	})

	t.Run("interrupt forfeits", func(t *testing.T) {
		p := scriptedHuman(t, "1 2\x03")

		move, _ := p.FindMove(midgame(), unlimited)

		require.Equal(t, game.NoMove, move)
	})

	t.Run("no legal moves forfeits without reading", func(t *testing.T) {
		p := scriptedHuman(t, "0 0\n")

		move, _ := p.FindMove(stuck(), unlimited)

		require.Equal(t, game.NoMove, move)
	})
}
