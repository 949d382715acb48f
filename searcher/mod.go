package searcher

import "nestris/game"

// Depth is the number of plies a playout looks ahead
const Depth = game.SequenceLength

// LoggingEnabled turns on debug traces of chosen placements and board snapshots
var LoggingEnabled = false

// Rules is everything a playout needs from the game: mode classification, weight lookup,
// move generation, state advancement and evaluation. Implementations must be
// deterministic and side-effect free.
type Rules interface {
	EvalContext(state game.GameState) game.EvalContext
	Weights(mode game.AiMode) game.FastEvalWeights
	MoveSearch(state game.GameState, piece game.Piece, timeline game.InputFrameTimeline) []game.SimState
	Advance(state game.GameState, placement game.SimState, ctx game.EvalContext) game.GameState
	Evaluate(prev, next game.GameState, placement game.SimState, ctx game.EvalContext, weights game.FastEvalWeights) float32
	LineClearFactor(lines int, weights game.FastEvalWeights) float32
}

// rewardWeights picks the weights that shape the line clear reward of a ply.
// While digging, rewards are still counted at standard levels.
func rewardWeights(rules Rules, ctx game.EvalContext, weights game.FastEvalWeights) game.FastEvalWeights {
	if ctx.AiMode == game.Dig {
		return rules.Weights(game.Standard)
	}
	return weights
}
