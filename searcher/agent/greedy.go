package agent

import (
	"nestris/game"
	"nestris/searcher"
)

type greedyAgent struct {
	rules searcher.Rules
}

// NewGreedyAgent returns an agent that only looks at the placement itself, with no lookahead
func NewGreedyAgent(rules searcher.Rules) Agent {
	return greedyAgent{rules: rules}
}

func (a greedyAgent) FindMove(state game.GameState, piece game.Piece) (Decision, error) {
	ctx := a.rules.EvalContext(state)
	weights := a.rules.Weights(ctx.AiMode)
	placements := a.rules.MoveSearch(state, piece, ctx.InputFrameTimeline)

	best, ok := searcher.PickLockPlacement(a.rules, state, ctx, weights, placements)
	if !ok {
		return Decision{}, ErrNoPlacement
	}
	next := a.rules.Advance(state, best, ctx)
	return Decision{
		Placement: best,
		Value:     a.rules.Evaluate(state, next, best, ctx, weights),
	}, nil
}
