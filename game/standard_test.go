package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRules(t *testing.T) {
	t.Run("defaults use the default weights and the 15Hz timeline", func(t *testing.T) {
		rules := NewStandardRules()

		require.Equal(t, DefaultWeightTable().Get(Dig), rules.Weights(Dig))
		require.Equal(t, Timeline15Hz, rules.EvalContext(NewGameState(18)).InputFrameTimeline)
	})

	t.Run("options replace weights and timeline", func(t *testing.T) {
		table := DefaultWeightTable()
		table[Standard].DeathCoef = -1
		rules := NewStandardRules(WithWeightTable(table), WithTimeline(Timeline30Hz))

		require.Equal(t, float32(-1), rules.Weights(Standard).DeathCoef)
		require.Equal(t, Timeline30Hz, rules.EvalContext(NewGameState(18)).InputFrameTimeline)
	})

	t.Run("empty timeline keeps the default", func(t *testing.T) {
		rules := NewStandardRules(WithTimeline(""))
		require.Equal(t, Timeline15Hz, rules.EvalContext(NewGameState(18)).InputFrameTimeline)
	})
}
