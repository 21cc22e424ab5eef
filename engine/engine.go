package engine

import (
	"errors"
	"isolation/experiments"
	"isolation/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

// Reason explains how a game ended.
type Reason string

const (
	ReasonNoMoves Reason = "no legal moves"
	ReasonForfeit Reason = "forfeit"
	ReasonIllegal Reason = "illegal move"
	ReasonTimeout Reason = "timeout"
)

type Outcome struct {
	Winner  game.Player
	Reason  Reason
	History []Update
}

type Update struct {
	Player game.Player
	Move   game.Move
	State  *game.Board
	Hash   uint64
}

type Runner interface {
	// Run plays the game till there's a winner
	Run() (Outcome, experiments.GameMetrics)
}
