package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveSearchEmptyBoard(t *testing.T) {
	state := NewGameState(0)

	t.Run("every rotation reaches every column at slow gravity", func(t *testing.T) {
		cases := []struct {
			id    byte
			count int
		}{
			{'T', 34},
			{'J', 34},
			{'L', 34},
			{'S', 17},
			{'Z', 17},
			{'O', 9},
			{'I', 17},
		}
		for _, c := range cases {
			piece, ok := PieceByID(c.id)
			require.True(t, ok)
			got := MoveSearch(state, piece, Timeline15Hz)
			require.Len(t, got, c.count, "Unexpected number of placements for %c", c.id)
		}
	})

	t.Run("placements are ordered by rotation then column", func(t *testing.T) {
		piece, _ := PieceByID('T')
		got := MoveSearch(state, piece, Timeline15Hz)

		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.RotationIndex == cur.RotationIndex {
				require.Less(t, prev.X, cur.X, "Columns should ascend within a rotation")
			} else {
				require.Less(t, prev.RotationIndex, cur.RotationIndex, "Rotations should ascend")
			}
		}
	})

	t.Run("pieces land on the floor", func(t *testing.T) {
		piece, _ := PieceByID('O')
		for _, p := range MoveSearch(state, piece, Timeline15Hz) {
			require.Equal(t, NumRows-3, p.Y, "O occupies box rows 1-2 so it rests with its box at row 17")
		}
	})
}

func TestMoveSearchLimits(t *testing.T) {
	t.Run("blocked spawn yields no placements", func(t *testing.T) {
		state := NewGameState(0)
		state.Board = ParseBoard(stackedRows(NumRows)...)

		piece, _ := PieceByID('I')
		require.Empty(t, MoveSearch(state, piece, Timeline15Hz))
	})

	t.Run("fast gravity with slow taps cannot reach the far wall over a tall stack", func(t *testing.T) {
		slow := NewGameState(0)
		fast := NewGameState(KillscreenLevel)
		rows := stackedRows(14)
		slow.Board = ParseBoard(rows...)
		fast.Board = ParseBoard(rows...)

		piece, _ := PieceByID('I')
		reachableSlow := MoveSearch(slow, piece, InputFrameTimeline("X....."))
		reachableFast := MoveSearch(fast, piece, InputFrameTimeline("X....."))

		require.NotEmpty(t, reachableFast)
		require.Less(t, len(reachableFast), len(reachableSlow), "Fast gravity should cut off far columns")
	})

	t.Run("no input frames means only the spawn column", func(t *testing.T) {
		piece, _ := PieceByID('O')
		got := MoveSearch(NewGameState(0), piece, InputFrameTimeline("...."))
		require.Len(t, got, 1)
		require.Equal(t, 0, got[0].Column())
	})
}

// stackedRows returns n rows that are full except for column 0, so nothing clears
func stackedRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = ".#########"
	}
	return rows
}
