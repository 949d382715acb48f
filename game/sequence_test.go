package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalSequences(t *testing.T) {
	t.Run("table holds every window and only valid pieces", func(t *testing.T) {
		require.Len(t, CanonicalSequences, NumCanonicalSequences*SequenceLength)
		for i, p := range CanonicalSequences {
			require.True(t, p >= 0 && p < NumPieces, "Entry %d is not a piece index: %d", i, p)
		}
	})

	t.Run("windows are fixed stride slices of the table", func(t *testing.T) {
		for _, i := range []int{0, 1, NumCanonicalSequences - 1} {
			seq := CanonicalSequence(i)
			require.Equal(t, CanonicalSequences[i*SequenceLength:(i+1)*SequenceLength], seq[:])
		}
	})

	t.Run("table is reproducible from its seed", func(t *testing.T) {
		require.Equal(t, CanonicalSequences, generateSequences(canonicalSeed, len(CanonicalSequences)))
	})
}

func TestPieceGenerator(t *testing.T) {
	t.Run("same seed deals the same pieces", func(t *testing.T) {
		a, b := NewPieceGenerator(42), NewPieceGenerator(42)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Next().ID, b.Next().ID)
		}
	})

	t.Run("every piece shows up", func(t *testing.T) {
		gen := NewPieceGenerator(7)
		seen := map[byte]bool{}
		for i := 0; i < 500; i++ {
			seen[gen.Next().ID] = true
		}
		require.Len(t, seen, NumPieces)
	})
}

func TestPieceByID(t *testing.T) {
	for i, p := range PieceList {
		got, ok := PieceByID(p.ID)
		require.True(t, ok)
		require.Equal(t, i, got.Index)
	}

	_, ok := PieceByID('X')
	require.False(t, ok)
}
