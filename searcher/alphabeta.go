package searcher

import (
	"isolation/game"
)

// AlphaBeta is Minimax with alpha-beta pruning. It picks the same move as
// Minimax for the same configuration.
func AlphaBeta(cfg Config, state game.State, depth int, timeLeft TimeLeft) (game.Move, error) {
	return newSearch(cfg, state, timeLeft).alphaBeta(state, depth, game.Loss, game.Win)
}

func (s *search) alphaBeta(state game.State, depth int, alpha, beta float64) (game.Move, error) {
	if s.expired() {
		return game.NoMove, ErrTimeout
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, nil
	}

	bestMove, bestValue := moves[0], game.Loss
	for _, move := range moves {
		value, err := s.minValueAB(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoMove, err
		}
		if value > bestValue {
			bestMove, bestValue = move, value
		}
		if bestValue >= beta {
			s.metrics.AddCutoff()
			break
		}
		alpha = max(alpha, bestValue)
	}
	return bestMove, nil
}

// maxValueAB returns as soon as a child reaches beta; the minimizing parent
// already has a better option.
func (s *search) maxValueAB(state game.State, depth int, alpha, beta float64) (float64, error) {
	if s.expired() {
		return 0, ErrTimeout
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if s.leaf(moves, depth) {
		return s.evaluate(state), nil
	}

	best := game.Loss
	for _, move := range moves {
		value, err := s.minValueAB(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = max(best, value)
		if best >= beta {
			s.metrics.AddCutoff()
			return best, nil
		}
		alpha = max(alpha, best)
	}
	return best, nil
}

// minValueAB mirrors maxValueAB with the cutoff at alpha.
func (s *search) minValueAB(state game.State, depth int, alpha, beta float64) (float64, error) {
	if s.expired() {
		return 0, ErrTimeout
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if s.leaf(moves, depth) {
		return s.evaluate(state), nil
	}

	best := game.Win
	for _, move := range moves {
		value, err := s.maxValueAB(state.Forecast(move), depth-1, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = min(best, value)
		if best <= alpha {
			s.metrics.AddCutoff()
			return best, nil
		}
		beta = min(beta, best)
	}
	return best, nil
}
