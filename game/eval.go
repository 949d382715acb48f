package game

import "github.com/chewxy/math32"

const (
	wellColumn   = NumCols - 1
	extremeGap   = 3
	tetrisHeight = 4
)

// FastEval scores the transition from prev to next by a linear combination of board features.
// Higher scores are better; a state that tops out scores exactly weights.DeathCoef.
func FastEval(prev, next GameState, _ SimState, _ EvalContext, weights FastEvalWeights) float32 {
	if next.Board.IsToppedOut() {
		return weights.DeathCoef
	}

	heights := next.Board.Heights()
	score := LineClearFactor(next.Lines-prev.Lines, weights)
	score += weights.HoleCoef * float32(next.Board.Holes())
	score += weights.SurfaceCoef * calculateSurfaceScore(heights)
	score += weights.ExtremeGapCoef * calculateExtremeGapScore(heights)
	score += weights.AvgHeightCoef * calculateAverageHeight(heights)
	score += weights.HighCoef * calculateHighScore(heights, weights.ScareHeight)
	score += weights.Col10Coef * float32(heights[wellColumn])
	if isWellCovered(next.Board, heights) {
		score += weights.CoveredWellCoef
	}
	if isTetrisReady(next.Board, heights) {
		score += weights.TetrisReadyCoef
	}
	return score
}

// calculateSurfaceScore sums the height differences between neighbouring stack columns, leaving out the well
func calculateSurfaceScore(heights [NumCols]int) float32 {
	var total float32
	for x := 0; x < wellColumn-1; x++ {
		total += math32.Abs(float32(heights[x] - heights[x+1]))
	}
	return total
}

// calculateExtremeGapScore counts how far steep steps exceed what a single I piece can fill cleanly
func calculateExtremeGapScore(heights [NumCols]int) float32 {
	var total float32
	for x := 0; x < wellColumn-1; x++ {
		diff := math32.Abs(float32(heights[x] - heights[x+1]))
		total += math32.Max(0, diff-extremeGap)
	}
	return total
}

func calculateAverageHeight(heights [NumCols]int) float32 {
	var sum float32
	for x := 0; x < wellColumn; x++ {
		sum += float32(heights[x])
	}
	return sum / wellColumn
}

// calculateHighScore penalizes stack cells above the scare line, growing quadratically
func calculateHighScore(heights [NumCols]int, scareHeight int) float32 {
	var total float32
	for x := 0; x < wellColumn; x++ {
		over := float32(heights[x] - scareHeight)
		if over > 0 {
			total += over * over
		}
	}
	return math32.Sqrt(total)
}

// isWellCovered reports whether the well column has filled cells over empty ones
func isWellCovered(b Board, heights [NumCols]int) bool {
	top := NumRows - heights[wellColumn]
	for y := top + 1; y < NumRows; y++ {
		if !b.Filled(wellColumn, y) {
			return true
		}
	}
	return false
}

// isTetrisReady reports whether the bottom four rows are full except for an open well
func isTetrisReady(b Board, heights [NumCols]int) bool {
	if heights[wellColumn] != 0 {
		return false
	}
	const stack = fullRow &^ (1 << wellColumn)
	for y := NumRows - tetrisHeight; y < NumRows; y++ {
		if b[y] != stack {
			return false
		}
	}
	return true
}
