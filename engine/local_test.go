package engine

import (
	"nestris/game"
	"nestris/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedPieces struct {
	ids []byte
	i   int
}

func (f *fixedPieces) Next() game.Piece {
	piece, _ := game.PieceByID(f.ids[f.i%len(f.ids)])
	f.i++
	return piece
}

func TestLocalEngineRun(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("plays up to the piece cap", func(t *testing.T) {
		e := LocalEngine(game.NewGameState(18), rules, agent.NewGreedyAgent(rules), game.NewPieceGenerator(3))

		gameMetric, moves, err := e.Run(20)

		require.NoError(t, err)
		require.Len(t, moves, 20)
		require.Equal(t, 20, gameMetric.Pieces)
		require.False(t, gameMetric.ToppedOut)
		require.Equal(t, e.State.Lines, gameMetric.Lines)
		for i, m := range moves {
			require.Equal(t, i+1, m.Step)
		}
	})

	t.Run("line count never decreases", func(t *testing.T) {
		e := LocalEngine(game.NewGameState(18), rules, agent.NewGreedyAgent(rules), &fixedPieces{ids: []byte("IOLJTSZ")})

		_, moves, err := e.Run(40)

		require.NoError(t, err)
		lines := 0
		for _, m := range moves {
			require.GreaterOrEqual(t, m.LinesCleared, 0)
			lines += m.LinesCleared
		}
		require.Equal(t, e.State.Lines, lines)
	})

	t.Run("topped out start ends the game", func(t *testing.T) {
		state := game.NewGameState(18)
		rows := make([]string, game.NumRows)
		for i := range rows {
			rows[i] = ".#########"
		}
		state.Board = game.ParseBoard(rows...)
		e := LocalEngine(state, rules, agent.NewGreedyAgent(rules), game.NewPieceGenerator(1))

		gameMetric, moves, err := e.Run(10)

		require.NoError(t, err)
		require.Empty(t, moves)
		require.True(t, gameMetric.ToppedOut)
	})

	t.Run("missing collaborators panic", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewGameState(18), rules, nil, game.NewPieceGenerator(1))
		})
	})
}
