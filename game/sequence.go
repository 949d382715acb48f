package game

import "golang.org/x/exp/rand"

// SequenceLength is the number of pieces in one playout sequence
const SequenceLength = 10

// Sequence is a run of upcoming pieces, as indices into PieceList
type Sequence [SequenceLength]int

const (
	NumCanonicalSequences = 100
	canonicalSeed         = 0x5eed
)

// CanonicalSequences is a fixed table of NumCanonicalSequences back-to-back piece sequences.
// It is built once at startup and must not be modified.
var CanonicalSequences = generateSequences(canonicalSeed, NumCanonicalSequences*SequenceLength)

// CanonicalSequence returns the i-th window of the canonical table
func CanonicalSequence(i int) Sequence {
	return Sequence(CanonicalSequences[i*SequenceLength : (i+1)*SequenceLength])
}

func generateSequences(seed uint64, n int) []int {
	gen := NewPieceGenerator(seed)
	pieces := make([]int, n)
	for i := range pieces {
		pieces[i] = gen.Next().Index
	}
	return pieces
}

// PieceGenerator deals pieces like the NES randomizer: roll one of eight outcomes and
// reroll once if the roll is the extra outcome or repeats the previous piece.
type PieceGenerator struct {
	rng  *rand.Rand
	prev int
}

func NewPieceGenerator(seed uint64) *PieceGenerator {
	return &PieceGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		prev: -1,
	}
}

func (g *PieceGenerator) Next() Piece {
	roll := g.rng.Intn(NumPieces + 1)
	if roll == NumPieces || roll == g.prev {
		roll = g.rng.Intn(NumPieces)
	}
	g.prev = roll
	return PieceList[roll]
}
