package searcher

import (
	"isolation/game"
	"time"

	"golang.org/x/exp/rand"
)

// mockState is a hand-built game tree. Leaves carry the value returned by mockEvaluate.
type mockState struct {
	player   game.Player
	children []*mockState
	value    float64
}

func leaf(value float64) *mockState {
	return &mockState{value: value}
}

// tree builds a node whose children are played by the opponent of player.
func tree(player game.Player, children ...*mockState) *mockState {
	for _, child := range children {
		child.setPlayer(player.Opponent())
	}
	return &mockState{player: player, children: children}
}

func (m *mockState) setPlayer(player game.Player) {
	m.player = player
	for _, child := range m.children {
		child.setPlayer(player.Opponent())
	}
}

func (m *mockState) ActivePlayer() game.Player { return m.player }

func (m *mockState) Opponent(p game.Player) game.Player { return p.Opponent() }

func (m *mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (m *mockState) LegalMovesFor(p game.Player) []game.Move {
	if p == m.player {
		return m.LegalMoves()
	}
	return nil
}

func (m *mockState) MoveIsLegal(move game.Move) bool {
	return move.Row == 0 && move.Col >= 0 && move.Col < len(m.children)
}

func (m *mockState) Forecast(move game.Move) game.State {
	return m.children[move.Col]
}

func (m *mockState) IsLoser(p game.Player) bool {
	return p == m.player && len(m.children) == 0
}

func (m *mockState) IsWinner(p game.Player) bool {
	return p != m.player && len(m.children) == 0
}

func (m *mockState) BlankCount() int                { return 0 }
func (m *mockState) Dimensions() (int, int)         { return 1, 1 }
func (m *mockState) Location(game.Player) game.Move { return game.NoMove }
func (m *mockState) Hash() uint64                   { return 0 }

func mockEvaluate(s game.State, _ game.Player) float64 {
	return s.(*mockState).value
}

// textbookTree is the depth-2 tree with minimax values 3, 2 and 2. Alpha-beta
// prunes after the first leaf of the second move and the last leaf of the third.
func textbookTree() *mockState {
	return tree(game.Player1,
		tree(game.Player2, leaf(3), leaf(12), leaf(8)),
		tree(game.Player2, leaf(2), leaf(4), leaf(6)),
		tree(game.Player2, leaf(14), leaf(5), leaf(2)),
	)
}

// countingState counts the states forecast from it and its descendants.
type countingState struct {
	game.State
	forecasts *int
}

func newCountingState(state game.State) countingState {
	return countingState{State: state, forecasts: new(int)}
}

func (c countingState) Forecast(move game.Move) game.State {
	*c.forecasts++
	return countingState{State: c.State.Forecast(move), forecasts: c.forecasts}
}

func unlimited() time.Duration {
	return time.Hour
}

func expired() time.Duration {
	return 0
}

// countdown allows calls node entries before reporting that time is up.
func countdown(calls int) TimeLeft {
	return func() time.Duration {
		if calls <= 0 {
			return 0
		}
		calls--
		return time.Hour
	}
}

// randomBoard plays plies random moves on a 7x7 board.
func randomBoard(rng *rand.Rand, plies int) *game.Board {
	b := game.NewBoard(7, 7)
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			break
		}
		b = b.Apply(moves[rng.Intn(len(moves))])
	}
	return b
}

// stuckBoard has player1 to move with no legal moves.
func stuckBoard() *game.Board {
	return game.NewBoard(3, 3).
		WithLocations(game.Move{Row: 0, Col: 0}, game.Move{Row: 1, Col: 1}, game.Player1).
		WithBlocked(game.Move{Row: 1, Col: 2}, game.Move{Row: 2, Col: 1})
}

// lastMoveBoard has player1 with the single move (1,2), after which player2
// at the center of the 3x3 board cannot move.
func lastMoveBoard() *game.Board {
	return game.NewBoard(3, 3).
		WithLocations(game.Move{Row: 0, Col: 0}, game.Move{Row: 1, Col: 1}, game.Player1).
		WithBlocked(game.Move{Row: 2, Col: 1})
}
