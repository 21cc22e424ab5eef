package searcher

import (
	"errors"
	"isolation/game"
	"isolation/meta"
	"time"
)

// ErrTimeout aborts a search when the time left falls to the threshold. It is
// returned unchanged by every frame and only handled by FixedDepth and
// IterativeDeepening.
var ErrTimeout = errors.New("search timed out")

// TimeLeft reports the time remaining for the current move.
type TimeLeft func() time.Duration

type Option func(cfg *Config)

// Config is the immutable search configuration shared by all search functions.
type Config struct {
	Depth     int // Fixed depth, or the first depth of iterative deepening
	MaxDepth  int // Last depth of iterative deepening, 0 for no limit
	Evaluate  game.Evaluate
	Threshold time.Duration
	Metrics   bool
}

func WithDepth(depth int) Option {
	return func(cfg *Config) {
		if depth > 0 {
			cfg.Depth = depth
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(cfg *Config) {
		if depth > 0 {
			cfg.MaxDepth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(cfg *Config) {
		if evaluate != nil {
			cfg.Evaluate = evaluate
		}
	}
}

func WithThreshold(threshold time.Duration) Option {
	return func(cfg *Config) {
		if threshold >= 0 {
			cfg.Threshold = threshold
		}
	}
}

func WithMetrics() Option {
	return func(cfg *Config) {
		cfg.Metrics = true
	}
}

func NewConfig(options ...Option) Config {
	cfg := Config{ // Default values
		Depth:     meta.SearchDepth,
		Evaluate:  game.Evaluators[meta.Heuristic],
		Threshold: meta.TimerThreshold,
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// Result is the outcome of a search entry point.
type Result struct {
	Move     game.Move
	Depth    int  // Deepest depth completed, 0 if none
	TimedOut bool // Set even when metrics are not collected
	Metrics  SearchMetrics
}

// search holds the per-call state of one top-level search. Nothing in it is
// shared between calls.
type search struct {
	Config
	root     game.Player
	timeLeft TimeLeft
	metrics  MetricsCollector
	// limited is set when a node is evaluated because the depth ran out
	// rather than because the game ended there.
	limited bool
}

func newSearch(cfg Config, state game.State, timeLeft TimeLeft) *search {
	if cfg.Evaluate == nil {
		cfg.Evaluate = game.Evaluators[meta.Heuristic]
	}
	metrics := NewNoMetricsCollector()
	if cfg.Metrics {
		metrics = NewMetricsCollector()
	}
	return &search{
		Config:   cfg,
		root:     state.ActivePlayer(),
		timeLeft: timeLeft,
		metrics:  metrics,
	}
}

// expired is checked on entry to every node.
func (s *search) expired() bool {
	return s.timeLeft() <= s.Threshold
}

// leaf reports whether a node is evaluated instead of expanded.
func (s *search) leaf(moves []game.Move, depth int) bool {
	if len(moves) == 0 {
		return true
	}
	if depth <= 0 {
		s.limited = true
		return true
	}
	return false
}

// evaluate scores a leaf for the root player, whoever is to move there.
func (s *search) evaluate(state game.State) float64 {
	return s.Evaluate(state, s.root)
}
