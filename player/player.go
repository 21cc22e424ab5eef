package player

import (
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns the move to play and the metrics of the search behind it (if collected).
	// game.NoMove forfeits the game.
	FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetrics)
}

type minimaxPlayer struct {
	cfg searcher.Config
}

// NewMinimaxPlayer returns an agent running a fixed-depth minimax search.
func NewMinimaxPlayer(cfg searcher.Config) Agent {
	return minimaxPlayer{cfg: cfg}
}

func (p minimaxPlayer) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetrics) {
	result := searcher.FixedDepth(p.cfg, state, timeLeft)
	result.Metrics.TimedOut = result.TimedOut
	return result.Move, result.Metrics
}

type alphaBetaPlayer struct {
	cfg searcher.Config
}

// NewAlphaBetaPlayer returns an agent running iterative deepening alpha-beta search.
func NewAlphaBetaPlayer(cfg searcher.Config) Agent {
	return alphaBetaPlayer{cfg: cfg}
}

func (p alphaBetaPlayer) FindMove(state game.State, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetrics) {
	result := searcher.IterativeDeepening(p.cfg, state, timeLeft)
	result.Metrics.TimedOut = result.TimedOut
	return result.Move, result.Metrics
}
