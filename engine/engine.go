package engine

import "nestris/experiments/metrics"

const MaxPieces = 10000

type Runner interface {
	// Run plays pieces till the board tops out or maxPieces pieces are placed
	Run(maxPieces int) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
