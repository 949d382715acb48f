package game

type RulesOption func(r *StandardRules)

// StandardRules binds the board physics, move search and fast evaluation together
type StandardRules struct {
	weights  WeightTable
	timeline InputFrameTimeline
}

func WithWeightTable(table WeightTable) RulesOption {
	return func(r *StandardRules) {
		r.weights = table
	}
}

func WithTimeline(timeline InputFrameTimeline) RulesOption {
	return func(r *StandardRules) {
		if timeline != "" {
			r.timeline = timeline
		}
	}
}

func NewStandardRules(options ...RulesOption) StandardRules {
	r := StandardRules{ // Default values
		weights:  DefaultWeightTable(),
		timeline: Timeline15Hz,
	}
	for _, option := range options {
		option(&r)
	}
	return r
}

func (r StandardRules) EvalContext(state GameState) EvalContext {
	return GetEvalContext(state, r.timeline)
}

func (r StandardRules) Weights(mode AiMode) FastEvalWeights {
	return r.weights.Get(mode)
}

func (r StandardRules) MoveSearch(state GameState, piece Piece, timeline InputFrameTimeline) []SimState {
	return MoveSearch(state, piece, timeline)
}

func (r StandardRules) Advance(state GameState, placement SimState, ctx EvalContext) GameState {
	return Advance(state, placement, ctx)
}

func (r StandardRules) Evaluate(prev, next GameState, placement SimState, ctx EvalContext, weights FastEvalWeights) float32 {
	return FastEval(prev, next, placement, ctx, weights)
}

func (r StandardRules) LineClearFactor(lines int, weights FastEvalWeights) float32 {
	return LineClearFactor(lines, weights)
}
