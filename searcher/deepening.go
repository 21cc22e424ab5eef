package searcher

import (
	"errors"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

// FixedDepth runs Minimax once at cfg.Depth. A search that times out returns
// game.NoMove.
func FixedDepth(cfg Config, state game.State, timeLeft TimeLeft) Result {
	s := newSearch(cfg, state, timeLeft)
	s.metrics.Start()

	move, err := s.minimax(state, cfg.Depth)
	if errors.Is(err, ErrTimeout) {
		s.metrics.TimedOut()
		log.Debug().Msgf("fixed depth %d search timed out", cfg.Depth)
		return Result{Move: game.NoMove, TimedOut: true, Metrics: s.metrics.Complete()}
	}

	s.metrics.CompleteDepth(cfg.Depth)
	return Result{Move: move, Depth: cfg.Depth, Metrics: s.metrics.Complete()}
}

// IterativeDeepening runs AlphaBeta at increasing depths, starting from
// cfg.Depth, and returns the move of the last depth that completed in time.
// It stops early once a depth is searched without reaching the depth limit
// anywhere, since every line was then played out to the end of the game.
// A MaxDepth below the starting depth still searches the starting depth.
func IterativeDeepening(cfg Config, state game.State, timeLeft TimeLeft) Result {
	s := newSearch(cfg, state, timeLeft)
	s.metrics.Start()

	start := max(cfg.Depth, 1)
	maxDepth := cfg.MaxDepth
	if maxDepth > 0 {
		maxDepth = max(maxDepth, start)
	}

	result := Result{Move: game.NoMove}
	for depth := start; maxDepth <= 0 || depth <= maxDepth; depth++ {
		s.limited = false

		move, err := s.alphaBeta(state, depth, game.Loss, game.Win)
		if errors.Is(err, ErrTimeout) {
			s.metrics.TimedOut()
			result.TimedOut = true
			log.Debug().Msgf("search timed out at depth %d, keeping move %v from depth %d", depth, result.Move, result.Depth)
			break
		}

		result.Move, result.Depth = move, depth
		s.metrics.CompleteDepth(depth)
		log.Debug().Msgf("completed depth %d with best move %v", depth, move)

		if !s.limited {
			log.Debug().Msgf("game tree exhausted at depth %d", depth)
			break
		}
	}

	result.Metrics = s.metrics.Complete()
	return result
}
