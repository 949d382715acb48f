package game

import "fmt"

// SimState is a lock placement: where a piece ends up when it is committed to the board
type SimState struct {
	Piece         Piece
	RotationIndex int
	X             int
	Y             int
}

// Column is the horizontal offset from the spawn column, as a player would read it
func (s SimState) Column() int {
	return s.X - SpawnX
}

func (s SimState) cells() [4]Cell {
	return s.Piece.Rotations[s.RotationIndex]
}

func (s SimState) String() string {
	return fmt.Sprintf("%c rot=%d col=%+d", s.Piece.ID, s.RotationIndex, s.Column())
}

// GameState should be treated as immutable - Advance always returns a new copy
type GameState struct {
	Board      Board
	Lines      int
	Level      int
	PieceCount int
}

func NewGameState(level int) GameState {
	return GameState{Level: level}
}

// Advance locks the placement into the board, clears full rows and updates the progression counters
func Advance(state GameState, placement SimState, _ EvalContext) GameState {
	next := state
	for _, c := range placement.cells() {
		y := placement.Y + c.Y
		if y >= 0 {
			next.Board.set(placement.X+c.X, y)
		}
	}

	board, cleared := next.Board.ClearLines()
	next.Board = board
	next.Lines += cleared
	next.Level += next.Lines/10 - state.Lines/10
	next.PieceCount++
	return next
}

// gravityFrames is the number of frames a piece takes to fall one row at each level
var gravityFrames = [...]int{48, 43, 38, 33, 28, 23, 18, 13, 8, 6, 5, 5, 5, 4, 4, 4, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2}

func Gravity(level int) int {
	if level < 0 {
		level = 0
	}
	if level >= len(gravityFrames) {
		return 1
	}
	return gravityFrames[level]
}
