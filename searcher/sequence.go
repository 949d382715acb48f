package searcher

import (
	"nestris/experiments/metrics"
	"nestris/game"

	"github.com/rs/zerolog/log"
)

// PlaySequence greedily plays the sequence from state and returns the total value of
// the playout: the shaped line clear rewards of the first nine placements plus the
// evaluation of the final one. A ply with no survivable placement ends the playout
// with that ply's death coefficient.
func PlaySequence(rules Rules, state game.GameState, seq game.Sequence) float32 {
	return playSequence(rules, state, seq, metrics.NewDummyCollector())
}

func playSequence(rules Rules, state game.GameState, seq game.Sequence, collector metrics.Collector) float32 {
	var totalReward float32
	for i := 0; i < Depth; i++ {
		ctx := rules.EvalContext(state)
		weights := rules.Weights(ctx.AiMode)
		collector.AddPly()

		piece := game.PieceList[seq[i]]
		placements := rules.MoveSearch(state, piece, ctx.InputFrameTimeline)
		if len(placements) == 0 {
			collector.AddDeath()
			return weights.DeathCoef
		}

		best, ok := PickLockPlacement(rules, state, ctx, weights, placements)
		if !ok {
			collector.AddDeath()
			return weights.DeathCoef
		}

		// On the last move, do a final evaluation
		if i == Depth-1 {
			next := rules.Advance(state, best, ctx)
			score := rules.Evaluate(state, next, best, ctx, weights)
			if LoggingEnabled {
				log.Debug().
					Stringer("placement", best).
					Float32("reward", totalReward).
					Float32("eval", score).
					Msgf("final board\n%s", next.Board)
			}
			return totalReward + score
		}

		oldLines := state.Lines
		state = rules.Advance(state, best, ctx)
		totalReward += rules.LineClearFactor(state.Lines-oldLines, rewardWeights(rules, ctx, weights))
		if LoggingEnabled {
			log.Debug().
				Int("ply", i).
				Stringer("mode", ctx.AiMode).
				Stringer("placement", best).
				Msgf("board\n%s", state.Board)
		}
	}
	panic("unreachable: playout always returns on the last ply")
}
