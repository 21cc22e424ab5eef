package searcher

import (
	"isolation/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	cfg := NewConfig(WithEvaluationFn(mockEvaluate))

	t.Run("picks the move with the best minimax value", func(t *testing.T) {
		move, err := Minimax(cfg, textbookTree(), 2, unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})

	t.Run("ties go to the first move", func(t *testing.T) {
		state := tree(game.Player1,
			tree(game.Player2, leaf(1), leaf(5)),
			tree(game.Player2, leaf(5), leaf(1)),
			tree(game.Player2, leaf(0)),
		)

		move, err := Minimax(cfg, state, 2, unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})

	t.Run("depth limits the search", func(t *testing.T) {
		// At depth 1 the second move looks better; one ply deeper it loses.
		state := tree(game.Player1,
			&mockState{value: 1, children: []*mockState{leaf(1)}},
			&mockState{value: 9, children: []*mockState{leaf(-5)}},
		)

		shallow, err := Minimax(cfg, state, 1, unlimited)
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 1}, shallow)

		deep, err := Minimax(cfg, state, 2, unlimited)
		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 0}, deep)
	})

	t.Run("depth zero evaluates the children", func(t *testing.T) {
		state := tree(game.Player1, leaf(1), leaf(2))

		move, err := Minimax(cfg, state, 0, unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 1}, move)
	})

	t.Run("leaves are evaluated for the root player", func(t *testing.T) {
		var players []game.Player
		recording := func(s game.State, p game.Player) float64 {
			players = append(players, p)
			return mockEvaluate(s, p)
		}

		_, err := Minimax(NewConfig(WithEvaluationFn(recording)), textbookTree(), 2, unlimited)

		require.NoError(t, err)
		require.Len(t, players, 9)
		for _, p := range players {
			require.Equal(t, game.Player1, p)
		}
	})

	t.Run("lost position still returns a legal move", func(t *testing.T) {
		state := tree(game.Player1, leaf(game.Loss), leaf(game.Loss))

		move, err := Minimax(cfg, state, 1, unlimited)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
	})
}

func TestMinimaxNoLegalMoves(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		move, err := Minimax(NewConfig(), stuckBoard(), depth, unlimited)

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move, "depth %d", depth)
	}
}

func TestMinimaxTimeout(t *testing.T) {
	t.Run("expired timer aborts before expanding the root", func(t *testing.T) {
		state := newCountingState(game.NewBoard(7, 7))

		move, err := Minimax(NewConfig(), state, 3, expired)

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, game.NoMove, move)
		require.Zero(t, *state.forecasts, "No child state should be explored")
	})

	t.Run("timeout deep in the tree propagates", func(t *testing.T) {
		move, err := Minimax(NewConfig(WithEvaluationFn(mockEvaluate)), textbookTree(), 2, countdown(6))

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, game.NoMove, move, "No partial result should be salvaged")
	})

	t.Run("time left equal to the threshold aborts", func(t *testing.T) {
		cfg := NewConfig(WithThreshold(0))

		_, err := Minimax(cfg, game.NewBoard(7, 7), 1, expired)

		require.ErrorIs(t, err, ErrTimeout)
	})
}

func TestMinimaxMetrics(t *testing.T) {
	s := newSearch(NewConfig(WithEvaluationFn(mockEvaluate), WithMetrics()), textbookTree(), unlimited)

	_, err := s.minimax(textbookTree(), 2)
	require.NoError(t, err)

	metrics := s.metrics.Complete()
	require.Equal(t, int64(13), metrics.Nodes, "Root, three replies and nine leaves")
	require.Zero(t, metrics.Cutoffs)
}
