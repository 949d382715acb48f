package searcher

import (
	"nestris/game"

	"github.com/rs/zerolog/log"
)

// PickLockPlacement selects the highest scoring placement by fast evaluation.
// Only scores strictly above the death coefficient count, and the first of equal
// scores wins. ok is false when nothing clears the floor.
func PickLockPlacement(rules Rules, state game.GameState, ctx game.EvalContext, weights game.FastEvalWeights, placements []game.SimState) (best game.SimState, ok bool) {
	bestSoFar := weights.DeathCoef
	for _, placement := range placements {
		newState := rules.Advance(state, placement, ctx)
		score := rules.Evaluate(state, newState, placement, ctx, weights)
		if score > bestSoFar {
			bestSoFar = score
			best = placement
			ok = true
		}
	}

	if LoggingEnabled {
		log.Debug().
			Bool("found", ok).
			Int("rotation", best.RotationIndex).
			Int("column", best.Column()).
			Float32("score", bestSoFar).
			Msg("best placement")
	}
	return best, ok
}
