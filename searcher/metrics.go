package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int   // Deepest completed depth
	Nodes     int64 // Nodes entered, including leaves
	Cutoffs   int64 // Alpha-beta prunings
	TimedOut  bool
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCutoff()
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetrics
}

// metricsCollector is used by a single search; searches are single threaded.
type metricsCollector struct {
	startTime time.Time
	depth     int
	nodes     int64
	cutoffs   int64
	timedOut  bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs++
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth = depth
}

func (m *metricsCollector) TimedOut() {
	m.timedOut = true
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     m.depth,
		Nodes:     m.nodes,
		Cutoffs:   m.cutoffs,
		TimedOut:  m.timedOut,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) CompleteDepth(int)       {}
func (m *noMetricsCollector) TimedOut()               {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
