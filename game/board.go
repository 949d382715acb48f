package game

import "strings"

const (
	NumRows = 20
	NumCols = 10

	fullRow = 1<<NumCols - 1
)

// Board is the playfield, one bitmask per row with row 0 at the top.
// Bit x of a row is set when column x is filled.
type Board [NumRows]uint16

func (b Board) Filled(x, y int) bool {
	return b[y]&(1<<x) != 0
}

func (b *Board) set(x, y int) {
	b[y] |= 1 << x
}

// collides reports whether the given cells overlap the walls, the floor, or filled cells
func (b Board) collides(cells [4]Cell, x, y int) bool {
	for _, c := range cells {
		cx, cy := x+c.X, y+c.Y
		if cx < 0 || cx >= NumCols || cy >= NumRows {
			return true
		}
		if cy >= 0 && b.Filled(cx, cy) {
			return true
		}
	}
	return false
}

// ClearLines removes full rows, shifting the rows above them down, and returns the count removed
func (b Board) ClearLines() (Board, int) {
	var cleared Board
	dst := NumRows - 1
	count := 0
	for y := NumRows - 1; y >= 0; y-- {
		if b[y] == fullRow {
			count++
			continue
		}
		cleared[dst] = b[y]
		dst--
	}
	return cleared, count
}

// Heights returns the height of each column measured from the floor
func (b Board) Heights() [NumCols]int {
	var heights [NumCols]int
	for x := 0; x < NumCols; x++ {
		for y := 0; y < NumRows; y++ {
			if b.Filled(x, y) {
				heights[x] = NumRows - y
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells that have a filled cell somewhere above them in the same column
func (b Board) Holes() int {
	holes := 0
	for x := 0; x < NumCols; x++ {
		covered := false
		for y := 0; y < NumRows; y++ {
			if b.Filled(x, y) {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// IsToppedOut reports whether the spawn area is blocked, which ends the game
func (b Board) IsToppedOut() bool {
	for y := 0; y < spawnRows; y++ {
		for x := SpawnX; x < SpawnX+spawnWidth; x++ {
			if b.Filled(x, y) {
				return true
			}
		}
	}
	return false
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < NumRows; y++ {
		for x := 0; x < NumCols; x++ {
			if b.Filled(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from rows of '#' (filled) and '.' (empty), aligned to the floor.
// Rows shorter than the board width are padded with empty cells.
func ParseBoard(rows ...string) Board {
	var b Board
	offset := NumRows - len(rows)
	for i, row := range rows {
		y := offset + i
		if y < 0 {
			continue
		}
		for x, ch := range row {
			if x < NumCols && ch == '#' {
				b.set(x, y)
			}
		}
	}
	return b
}
