package player

import (
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns an agent playing uniformly random legal moves.
func NewRandomPlayer(seed uint64) Agent {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) FindMove(state game.State, _ searcher.TimeLeft) (game.Move, searcher.SearchMetrics) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.SearchMetrics{}
	}
	return moves[p.rng.Intn(len(moves))], searcher.SearchMetrics{}
}
