package searcher

import (
	"isolation/game"
)

// Minimax returns the move with the best depth-limited minimax value for the
// active player, or game.NoMove if there is none. Ties go to the first move.
func Minimax(cfg Config, state game.State, depth int, timeLeft TimeLeft) (game.Move, error) {
	return newSearch(cfg, state, timeLeft).minimax(state, depth)
}

func (s *search) minimax(state game.State, depth int) (game.Move, error) {
	if s.expired() {
		return game.NoMove, ErrTimeout
	}
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, nil
	}

	// Seeded with the first move so that a lost position still returns a legal move
	bestMove, bestValue := moves[0], game.Loss
	for _, move := range moves {
		value, err := s.minValue(state.Forecast(move), depth-1)
		if err != nil {
			return game.NoMove, err
		}
		if value > bestValue {
			bestMove, bestValue = move, value
		}
	}
	return bestMove, nil
}

func (s *search) maxValue(state game.State, depth int) (float64, error) {
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
		value, err := s.minValue(state.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = max(best, value)
	}
	return best, nil
}

func (s *search) minValue(state game.State, depth int) (float64, error) {
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
		value, err := s.maxValue(state.Forecast(move), depth-1)
		if err != nil {
			return 0, err
		}
		best = min(best, value)
	}
	return best, nil
}
