package metrics

import (
	"morris/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Variant  string
	Leaves   int
	Nodes    int // Positions expanded by the move generator
	Score    int
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Board  string // Position after the move
	SearchMetric
}

type GameMetric struct {
	Winner     game.Cell // Empty on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int, variant string)
	AddLeaf()
	AddNode()
	Complete(score int) SearchMetric
}

type collector struct {
	depth     int
	variant   string
	startTime time.Time
	leaves    atomic.Int64
	nodes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, variant string) {
	m.startTime = time.Now()
	m.depth = depth
	m.variant = variant
	m.leaves.Store(0)
	m.nodes.Store(0)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Variant:  m.variant,
		Leaves:   int(m.leaves.Load()),
		Nodes:    int(m.nodes.Load()),
		Score:    score,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, variant string) {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{} }
