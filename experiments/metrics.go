package experiments

import (
	"isolation/game"
	"isolation/searcher"
	"time"
)

type MoveMetrics struct {
	Step   int
	Player game.Player
	Move   game.Move
	Hash   uint64 // Hash of the state after the move
	searcher.SearchMetrics
}

type GameMetrics []MoveMetrics

// PlayerSetup describes how one side was configured.
type PlayerSetup struct {
	Player    string        `json:"player"`
	Agent     string        `json:"agent"`
	Heuristic string        `json:"heuristic,omitempty"`
	Depth     int           `json:"depth,omitempty"`
	MaxDepth  int           `json:"maxDepth,omitempty"`
	TimeLimit time.Duration `json:"timeLimit"`
}

type Setup struct {
	Players   []PlayerSetup `json:"players"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Winner    string        `json:"winner"`
	Reason    string        `json:"reason"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}
