package agent

import (
	"errors"
	"nestris/experiments/metrics"
	"nestris/game"
)

// ErrNoPlacement means the piece has no survivable placement and the game is lost
var ErrNoPlacement = errors.New("no survivable placement")

type Decision struct {
	Placement game.SimState
	Value     float32
	Metric    metrics.SearchMetric
}

type Agent interface {
	// FindMove picks where to lock piece on the current state
	FindMove(state game.GameState, piece game.Piece) (Decision, error)
}
