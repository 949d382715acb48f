package agent

import (
	"fmt"
	"nestris/game"
	"nestris/searcher"

	"golang.org/x/exp/slices"
)

type playoutAgent struct {
	rules       searcher.Rules
	playout     *searcher.Playout
	numPlayouts int
	breadth     int
}

type candidate struct {
	placement game.SimState
	next      game.GameState
	eval      float32
}

// NewPlayoutAgent returns an agent that keeps the breadth best placements by fast
// evaluation and picks among them by averaged playouts of the resulting states.
func NewPlayoutAgent(rules searcher.Rules, playout *searcher.Playout, numPlayouts, breadth int) Agent {
	if numPlayouts < 1 || breadth < 1 {
		panic("Must specify at least one playout and a breadth of at least one")
	}
	return playoutAgent{
		rules:       rules,
		playout:     playout,
		numPlayouts: numPlayouts,
		breadth:     breadth,
	}
}

func (a playoutAgent) FindMove(state game.GameState, piece game.Piece) (Decision, error) {
	ctx := a.rules.EvalContext(state)
	weights := a.rules.Weights(ctx.AiMode)
	candidates := a.prune(state, ctx, weights, a.rules.MoveSearch(state, piece, ctx.InputFrameTimeline))
	if len(candidates) == 0 {
		return Decision{}, ErrNoPlacement
	}

	rewards := weights
	if ctx.AiMode == game.Dig {
		rewards = a.rules.Weights(game.Standard)
	}

	// Every candidate survives the placement itself, so one is always chosen even when
	// all futures look lost
	var best Decision
	for i, c := range candidates {
		score, err := a.playout.Score(c.next, a.numPlayouts)
		if err != nil {
			return Decision{}, fmt.Errorf("failed to score %v: %w", c.placement, err)
		}
		value := a.rules.LineClearFactor(c.next.Lines-state.Lines, rewards) + score
		if i == 0 || value > best.Value {
			best = Decision{Placement: c.placement, Value: value, Metric: a.playout.Metrics()}
		}
	}
	return best, nil
}

// prune drops placements at or below the death floor and keeps the breadth best, preserving generation order among equals
func (a playoutAgent) prune(state game.GameState, ctx game.EvalContext, weights game.FastEvalWeights, placements []game.SimState) []candidate {
	candidates := make([]candidate, 0, len(placements))
	for _, placement := range placements {
		next := a.rules.Advance(state, placement, ctx)
		eval := a.rules.Evaluate(state, next, placement, ctx, weights)
		if eval > weights.DeathCoef {
			candidates = append(candidates, candidate{placement: placement, next: next, eval: eval})
		}
	}

	slices.SortStableFunc(candidates, func(x, y candidate) int {
		switch {
		case x.eval > y.eval:
			return -1
		case x.eval < y.eval:
			return 1
		default:
			return 0
		}
	})
	if len(candidates) > a.breadth {
		candidates = candidates[:a.breadth]
	}
	return candidates
}
