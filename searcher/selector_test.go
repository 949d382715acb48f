package searcher

import (
	"nestris/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickLockPlacement(t *testing.T) {
	piece := game.PieceList[0]
	placements := []game.SimState{
		{Piece: piece, X: 0},
		{Piece: piece, X: 1},
		{Piece: piece, X: 2},
	}
	scoreByX := func(scores ...float32) func(game.GameState, game.GameState, game.SimState) float32 {
		return func(_, _ game.GameState, p game.SimState) float32 {
			return scores[p.X]
		}
	}

	t.Run("selecting the highest scoring placement", func(t *testing.T) {
		rules := newMockRules()
		rules.eval = scoreByX(5, 9, 7)
		weights := rules.Weights(game.Standard)

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{}, weights, placements)

		require.True(t, ok)
		require.Equal(t, placements[1], got, "Should select the placement with max score")
	})

	t.Run("ties go to the earliest placement", func(t *testing.T) {
		rules := newMockRules()
		rules.eval = scoreByX(3, 9, 9)
		weights := rules.Weights(game.Standard)

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{}, weights, placements)

		require.True(t, ok)
		require.Equal(t, placements[1], got, "Equal scores should not replace the first best")
	})

	t.Run("empty candidate list yields no placement", func(t *testing.T) {
		rules := newMockRules()
		weights := rules.Weights(game.Standard)

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{}, weights, nil)

		require.False(t, ok)
		require.Equal(t, game.SimState{}, got)
	})

	t.Run("scores at or below the death coefficient are never selected", func(t *testing.T) {
		rules := newMockRules()
		weights := rules.Weights(game.Standard)
		rules.eval = scoreByX(weights.DeathCoef, weights.DeathCoef-1, weights.DeathCoef)

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{}, weights, placements)

		require.False(t, ok, "Nothing beats the floor")
		require.Equal(t, game.SimState{}, got)
	})

	t.Run("a zero rotation spawn column placement is a real choice", func(t *testing.T) {
		rules := newMockRules()
		rules.eval = scoreByX(1)
		weights := rules.Weights(game.Standard)
		zero := game.SimState{}

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{}, weights, []game.SimState{zero})

		require.True(t, ok, "Found flag should tell a chosen zero placement from no placement")
		require.Equal(t, zero, got)
	})

	t.Run("scores use the supplied weights as the floor", func(t *testing.T) {
		rules := newMockRules()
		rules.eval = scoreByX(-1500, -1200, -1800)
		dig := rules.Weights(game.Dig)

		got, ok := PickLockPlacement(rules, game.GameState{}, game.EvalContext{AiMode: game.Dig}, dig, placements)

		require.True(t, ok, "Dig floor of -2000 should admit these scores")
		require.Equal(t, placements[1], got)
	})
}
