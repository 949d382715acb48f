package searcher

import (
	"errors"
	"fmt"
	"nestris/experiments/metrics"
	"nestris/game"
	"sync"
)

var (
	ErrNoPlayouts             = errors.New("number of playouts must be at least 1")
	ErrSequenceTableExhausted = errors.New("not enough piece sequences")
)

type Option func(p *Playout)

// Playout averages sequence playouts over windows of a fixed piece sequence table.
// Concurrent calls to Score on the same Playout are not supported.
type Playout struct {
	rules      Rules
	sequences  []int
	goroutines int
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func WithGoroutines(goroutines int) Option {
	return func(p *Playout) {
		if goroutines > 0 {
			p.goroutines = goroutines
		}
	}
}

// WithSequences replaces the canonical table; the table is read but never modified
func WithSequences(sequences []int) Option {
	return func(p *Playout) {
		if sequences != nil {
			p.sequences = sequences
		}
	}
}

func WithMetrics() Option {
	return func(p *Playout) {
		p.metrics = metrics.NewCollector()
	}
}

func NewPlayout(rules Rules, options ...Option) *Playout {
	if rules == nil {
		panic("Must specify game rules")
	}
	p := &Playout{ // Default values
		rules:      rules,
		sequences:  game.CanonicalSequences,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// PlayoutScore averages numPlayouts playouts over the canonical sequences on a single goroutine
func PlayoutScore(rules Rules, state game.GameState, numPlayouts int) (float32, error) {
	return NewPlayout(rules).Score(state, numPlayouts)
}

// Score returns the mean value of numPlayouts playouts from state, where playout i plays
// the sequence starting at table offset i*Depth. The result does not depend on the
// number of goroutines.
func (p *Playout) Score(state game.GameState, numPlayouts int) (float32, error) {
	if numPlayouts < 1 {
		return 0, fmt.Errorf("got %d: %w", numPlayouts, ErrNoPlayouts)
	}
	if limit := len(p.sequences) / Depth; numPlayouts > limit {
		return 0, fmt.Errorf("%d playouts requested, table of %d pieces holds %d: %w",
			numPlayouts, len(p.sequences), limit, ErrSequenceTableExhausted)
	}

	p.metrics.Start(p.goroutines)
	scores := p.iterate(state, numPlayouts)
	p.last = p.metrics.Complete()

	// Sum in index order so the result is reproducible regardless of scheduling
	var total float32
	for _, score := range scores {
		total += score
	}
	return total / float32(numPlayouts), nil
}

// Metrics returns the metrics of the last Score call (zero unless WithMetrics was set)
func (p *Playout) Metrics() metrics.SearchMetric {
	return p.last
}

func (p *Playout) iterate(state game.GameState, numPlayouts int) []float32 {
	task := make(chan int, numPlayouts)
	for i := 0; i < numPlayouts; i++ {
		task <- i
	}
	close(task)

	scores := make([]float32, numPlayouts)
	var wg sync.WaitGroup
	for i := 0; i < min(p.goroutines, numPlayouts); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				score := playSequence(p.rules, state, p.sequence(idx), p.metrics)
				p.metrics.AddPlayout(score)
				scores[idx] = score
			}
		}()
	}

	wg.Wait()
	return scores
}

func (p *Playout) sequence(i int) game.Sequence {
	return game.Sequence(p.sequences[i*Depth : (i+1)*Depth])
}
