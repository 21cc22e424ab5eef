package engine

import (
	"fmt"
	"isolation/experiments"
	"isolation/game"
	"isolation/meta"
	"isolation/player"
	"isolation/searcher"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

// WithTimeLimit sets the time budget of each move, meta.TimeLimit by default.
// Zero leaves moves untimed, so searching agents then need a MaxDepth to return.
func WithTimeLimit(limit time.Duration) Option {
	return func(e *Engine) {
		if limit >= 0 {
			e.timeLimit = limit
		}
	}
}

// WithUntimed exempts p from the time limit, e.g. for a human at the keyboard.
// Like WithTimeLimit(0), it suits agents that do not depend on the clock.
func WithUntimed(p game.Player) Option {
	return func(e *Engine) {
		e.untimed[p] = true
	}
}

type Engine struct {
	State     *game.Board
	Agents    []player.Agent // Indexed by player ID - 1
	timeLimit time.Duration
	untimed   map[game.Player]bool
	history   []Update
	outcome   *Outcome
}

// LocalEngine sets up a game on board between two agents, agents[0] playing player1.
func LocalEngine(board *game.Board, agents []player.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Engine{
		State:     board,
		Agents:    agents,
		timeLimit: meta.TimeLimit,
		untimed:   make(map[game.Player]bool),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play applies a move for the active player. The move must be legal.
func (e *Engine) Play(move game.Move) error {
	if e.outcome != nil {
		return ErrGameOver
	}
	if !lo.Contains(e.State.LegalMoves(), move) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, e.State.ActivePlayer())
	}

	mover := e.State.ActivePlayer()
	e.State = e.State.Apply(move)
	e.history = append(e.history, Update{
		Player: mover,
		Move:   move,
		State:  e.State,
		Hash:   e.State.Hash(),
	})

	if winner := e.State.Winner(); winner != game.NoPlayer {
		e.finish(winner, ReasonNoMoves)
	}
	return nil
}

// Outcome returns the result once the game is over.
func (e *Engine) Outcome() (Outcome, bool) {
	if e.outcome == nil {
		return Outcome{}, false
	}
	return *e.outcome, true
}

func (e *Engine) finish(winner game.Player, reason Reason) {
	e.outcome = &Outcome{
		Winner:  winner,
		Reason:  reason,
		History: e.history,
	}
	log.Info().Msgf("%v wins after %d moves: %s", winner, len(e.history), reason)
}

// Run executes the entire game loop until a winner is found.
func (e *Engine) Run() (Outcome, experiments.GameMetrics) {
	log.Info().Msgf("%v is starting", e.State.ActivePlayer())
	if winner := e.State.Winner(); winner != game.NoPlayer {
		e.finish(winner, ReasonNoMoves)
	}

	var gameMetrics experiments.GameMetrics
	// Every move blocks a cell, so the loop ends within the board's cell count
	for step := 1; e.outcome == nil; step++ {
		current := e.State.ActivePlayer()
		timeLeft, late := e.clock(current)

		move, metrics := e.Agents[current-1].FindMove(e.State, timeLeft)
		log.Debug().Msgf("step %d: %v plays %v (depth %d, %d nodes)", step, current, move, metrics.Depth, metrics.Nodes)

		switch {
		case move.IsNone():
			e.finish(current.Opponent(), ReasonForfeit)
		case late():
			log.Warn().Msgf("%v returned %v after the deadline", current, move)
			e.finish(current.Opponent(), ReasonTimeout)
		default:
			if err := e.Play(move); err != nil {
				log.Warn().Err(err).Msg("rejected move")
				e.finish(current.Opponent(), ReasonIllegal)
			}
		}

		gameMetrics = append(gameMetrics, experiments.MoveMetrics{
			Step:          step,
			Player:        current,
			Move:          move,
			Hash:          e.State.Hash(),
			SearchMetrics: metrics,
		})
	}

	return *e.outcome, gameMetrics
}

// clock starts the move timer for p and reports whether the move came in late.
func (e *Engine) clock(p game.Player) (searcher.TimeLeft, func() bool) {
	if e.timeLimit == 0 || e.untimed[p] {
		return func() time.Duration { return math.MaxInt64 }, func() bool { return false }
	}
	deadline := time.Now().Add(e.timeLimit)
	timeLeft := func() time.Duration {
		return time.Until(deadline)
	}
	return timeLeft, func() bool { return timeLeft() < 0 }
}
