package game

import "math"

// Player identifies one side of the game.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Move is the target cell of a move, by row and column.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when there is no legal move; the harness treats it as a forfeit.
var NoMove = Move{Row: -1, Col: -1}

// IsNone reports whether m is the no-move sentinel.
func (m Move) IsNone() bool {
	return m.Row < 0 || m.Col < 0
}

// Reserved scores from the evaluating player's perspective.
var (
	Loss = math.Inf(-1)
	Win  = math.Inf(1)
)

// State should be immutable - Forecast always returns a new copy
type State interface {
	ActivePlayer() Player
	Opponent(p Player) Player
	// LegalMoves returns the moves of the active player.
	LegalMoves() []Move
	LegalMovesFor(p Player) []Move
	// MoveIsLegal reports whether m is on the board and blank.
	MoveIsLegal(m Move) bool
	Forecast(m Move) State
	IsLoser(p Player) bool
	IsWinner(p Player) bool
	BlankCount() int
	Dimensions() (width, height int)
	Location(p Player) Move
	Hash() uint64
}

// Evaluate scores a state from the point of view of player. It returns Loss
// if player has lost, Win if player has won and a finite value otherwise.
type Evaluate func(state State, player Player) float64
