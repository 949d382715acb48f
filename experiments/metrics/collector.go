package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Playouts   int
	Plies      int
	Deaths     int
	Mean       float64 // Mean playout value
	StdDev     float64 // Spread of playout values across sequences
}

type MoveMetric struct {
	Step         int
	Piece        string
	Rotation     int
	Column       int
	LinesCleared int
	Value        float64
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	StartLevel int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Pieces     int
	Lines      int
	Level      int
	Tetrises   int
	ToppedOut  bool
}

// TetrisRate is the share of cleared lines that came from tetrises
func (g GameMetric) TetrisRate() float64 {
	if g.Lines == 0 {
		return 0
	}
	return float64(g.Tetrises*4) / float64(g.Lines)
}

type Collector interface {
	Start(goroutines int)
	AddPlayout(value float32)
	AddPly()
	AddDeath()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	plies      atomic.Int32
	deaths     atomic.Int32

	mu     sync.Mutex
	values []float64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.plies.Store(0)
	m.deaths.Store(0)

	m.mu.Lock()
	m.values = m.values[:0]
	m.mu.Unlock()
}

func (m *collector) AddPlayout(value float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = append(m.values, float64(value))
}

func (m *collector) AddPly() {
	m.plies.Add(1)
}

func (m *collector) AddDeath() {
	m.deaths.Add(1)
}

func (m *collector) Complete() SearchMetric {
	m.mu.Lock()
	defer m.mu.Unlock()

	metric := SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Playouts:   len(m.values),
		Plies:      int(m.plies.Load()),
		Deaths:     int(m.deaths.Load()),
	}
	if len(m.values) > 1 {
		metric.Mean, metric.StdDev = stat.MeanStdDev(m.values, nil)
	} else if len(m.values) == 1 {
		metric.Mean = m.values[0]
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)     {}
func (m *dummyCollector) AddPlayout(value float32) {}
func (m *dummyCollector) AddPly()                  {}
func (m *dummyCollector) AddDeath()                {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
