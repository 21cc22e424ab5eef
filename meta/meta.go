// meta/meta.go
package meta

import "time"

// BoardWidth defines the default number of board columns.
const BoardWidth = 7

// BoardHeight defines the default number of board rows.
const BoardHeight = 7

// SearchDepth defines the fixed search depth, and the starting depth of iterative deepening.
const SearchDepth = 3

// TimeLimit defines the time budget per move.
const TimeLimit = 150 * time.Millisecond

// TimerThreshold defines the time left at which a search is aborted.
const TimerThreshold = 10 * time.Millisecond

// Heuristic defines the evaluator used when none is configured.
const Heuristic = "lookahead"
