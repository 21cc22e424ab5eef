package player

import (
	"errors"
	"fmt"
	"io"
	"isolation/game"
	"isolation/searcher"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var errBadMove = errors.New("expected a move as: row col")

// HumanPlayer prompts for moves on the terminal. It ignores the clock, so it
// should sit in an untimed engine seat.
type HumanPlayer struct {
	rl *readline.Instance
}

func NewHumanPlayer() (*HumanPlayer, error) {
	return newHumanPlayer(&readline.Config{})
}

// newHumanPlayer fills in the prompts of cfg, leaving its streams and terminal hooks alone.
func newHumanPlayer(cfg *readline.Config) (*HumanPlayer, error) {
	cfg.Prompt = "move> "
	cfg.EOFPrompt = "forfeit"
	cfg.InterruptPrompt = "^C"
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt: %w", err)
	}
	return &HumanPlayer{rl: rl}, nil
}

func (p *HumanPlayer) Close() error {
	return p.rl.Close()
}

func (p *HumanPlayer) FindMove(state game.State, _ searcher.TimeLeft) (game.Move, searcher.SearchMetrics) {
	if s, ok := state.(fmt.Stringer); ok {
		fmt.Fprintln(p.rl.Stdout(), s.String())
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.SearchMetrics{}
	}
	fmt.Fprintf(p.rl.Stdout(), "%v to move, legal moves: %v\n", state.ActivePlayer(), moves)

	for {
		line, err := p.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return game.NoMove, searcher.SearchMetrics{}
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to read move")
			return game.NoMove, searcher.SearchMetrics{}
		}

		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(p.rl.Stdout(), err)
			continue
		}
		if !lo.Contains(moves, move) {
			fmt.Fprintf(p.rl.Stdout(), "%v is not a legal move\n", move)
			continue
		}
		return move, searcher.SearchMetrics{}
	}
}

// parseMove reads "row col", also accepting a comma between the coordinates.
func parseMove(line string) (game.Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return game.NoMove, errBadMove
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.NoMove, fmt.Errorf("%w: %v", errBadMove, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.NoMove, fmt.Errorf("%w: %v", errBadMove, err)
	}
	return game.Move{Row: row, Col: col}, nil
}
