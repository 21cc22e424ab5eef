package game

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Evaluators maps the configuration names of the evaluators to their functions.
var Evaluators = map[string]Evaluate{
	"lookahead": EvaluateLookAhead,
	"mobility":  EvaluateMobility,
	"center":    EvaluateCenter,
	"open":      EvaluateOpenMoves,
	"improved":  EvaluateImproved,
}

// EvaluatorByName resolves an evaluator from its configuration name.
func EvaluatorByName(name string) (Evaluate, error) {
	evaluate, ok := Evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
	return evaluate, nil
}

// EvaluateLookAhead compares the moves each side could reach in two steps, and
// rewards contested cells more as the board fills up.
func EvaluateLookAhead(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	ownMoves, oppMoves := mobility(s, player)

	ownLookAhead := lookAheadMoves(s, ownMoves)
	oppLookAhead := lookAheadMoves(s, oppMoves)

	ownContested := contestedMoves(ownMoves, oppMoves)
	oppContested := contestedMoves(oppMoves, ownLookAhead)

	occ := occupancy(s)

	return float64(len(ownLookAhead)-len(oppLookAhead)) +
		float64(len(ownContested)-len(oppContested))*occ
}

// EvaluateMobility is the move difference plus the contested cells weighted by occupancy.
func EvaluateMobility(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	ownMoves, oppMoves := mobility(s, player)
	ownContested := contestedMoves(ownMoves, oppMoves)

	return float64(len(ownMoves)-len(oppMoves)) + float64(len(ownContested))*occupancy(s)
}

// EvaluateCenter is the move difference plus how much further from the center
// player is than its opponent. The distance term weighs most on an empty board.
func EvaluateCenter(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	ownMoves, oppMoves := mobility(s, player)
	score := float64(len(ownMoves) - len(oppMoves))

	occ := occupancy(s)
	if occ == 0 {
		return score
	}
	ownDistance := centerDistance(s, s.Location(player))
	oppDistance := centerDistance(s, s.Location(s.Opponent(player)))

	return score + (ownDistance-oppDistance)/occ
}

// EvaluateOpenMoves counts the moves available to player.
func EvaluateOpenMoves(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	return float64(len(s.LegalMovesFor(player)))
}

// EvaluateImproved is the difference between both sides' move counts.
func EvaluateImproved(s State, player Player) float64 {
	if score, over := outcome(s, player); over {
		return score
	}
	ownMoves, oppMoves := mobility(s, player)
	return float64(len(ownMoves) - len(oppMoves))
}

func outcome(s State, player Player) (float64, bool) {
	if s.IsLoser(player) {
		return Loss, true
	}
	if s.IsWinner(player) {
		return Win, true
	}
	return 0, false
}

func mobility(s State, player Player) (own, opp []Move) {
	return s.LegalMovesFor(player), s.LegalMovesFor(s.Opponent(player))
}

// lookAheadMoves extends every move by each knight step and keeps the legal
// targets. Cells reachable from several moves are counted once per move.
func lookAheadMoves(s State, moves []Move) []Move {
	return lo.FlatMap(moves, func(m Move, _ int) []Move {
		reachable := make([]Move, 0, len(knightSteps))
		for _, step := range knightSteps {
			next := Move{Row: m.Row + step.Row, Col: m.Col + step.Col}
			if s.MoveIsLegal(next) {
				reachable = append(reachable, next)
			}
		}
		return reachable
	})
}

// contestedMoves returns the distinct moves present in both lists.
func contestedMoves(moves, others []Move) []Move {
	return lo.Uniq(lo.Filter(moves, func(m Move, _ int) bool {
		return lo.Contains(others, m)
	}))
}

// occupancy is the fraction of blocked cells, between 0 and 1.
func occupancy(s State) float64 {
	width, height := s.Dimensions()
	all := width * height
	if all == 0 {
		return 0
	}
	return float64(all-s.BlankCount()) / float64(all)
}

// centerDistance is the squared distance from loc to the board center.
// Unplaced players are at distance 0.
func centerDistance(s State, loc Move) float64 {
	if loc.IsNone() {
		return 0
	}
	width, height := s.Dimensions()
	w, h := float64(width)/2, float64(height)/2
	dy, dx := h-float64(loc.Row), w-float64(loc.Col)
	return dy*dy + dx*dx
}
