package experiments

import (
	"fmt"
	"nestris/experiments/metrics"
	"nestris/game"
	"nestris/searcher"

	"github.com/rs/zerolog/log"
)

type ThroughputResult struct {
	Goroutines int
	Value      float32
	metrics.SearchMetric
}

// RunThroughputExperiment scores the same state with each goroutine count and reports the timings.
// The values must agree across goroutine counts; a mismatch is returned as an error.
func RunThroughputExperiment(rules searcher.Rules, state game.GameState, numPlayouts int, goroutines []int) ([]ThroughputResult, error) {
	results := make([]ThroughputResult, 0, len(goroutines))

	log.Info().Msg("starting throughput experiment...")

	for _, n := range goroutines {
		playout := searcher.NewPlayout(rules, searcher.WithGoroutines(n), searcher.WithMetrics())
		value, err := playout.Score(state, numPlayouts)
		if err != nil {
			return results, err
		}
		if len(results) > 0 && results[0].Value != value {
			return results, fmt.Errorf("value %f with %d goroutines differs from %f with %d",
				value, n, results[0].Value, results[0].Goroutines)
		}

		metric := playout.Metrics()
		results = append(results, ThroughputResult{Goroutines: n, Value: value, SearchMetric: metric})
		log.Info().Msgf("goroutines=%d playouts=%d plies=%d duration=%s", n, metric.Playouts, metric.Plies, metric.Duration)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}
