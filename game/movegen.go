package game

// maxFrames bounds a single shift simulation; no piece needs longer to cross the board
const maxFrames = 1000

// MoveSearch enumerates the lock placements of piece reachable from spawn under the
// input timeline and the state's gravity. Placements come out ordered by rotation
// index, then by X ascending; callers selecting with a strict comparison inherit
// this order as their tie-break. An empty result means the piece cannot spawn.
func MoveSearch(state GameState, piece Piece, timeline InputFrameTimeline) []SimState {
	board := state.Board
	if board.collides(piece.Rotations[0], SpawnX, 0) {
		return nil
	}

	gravity := Gravity(state.Level)
	placements := []SimState{}
	for rot, cells := range piece.Rotations {
		if board.collides(cells, SpawnX, 0) {
			continue
		}

		left := []SimState{}
		for shifts := 1; ; shifts++ {
			placement, ok := simulateShifts(board, piece, rot, -1, shifts, gravity, timeline)
			if !ok {
				break
			}
			left = append(left, placement)
		}
		for i := len(left) - 1; i >= 0; i-- {
			placements = append(placements, left[i])
		}

		placement, _ := simulateShifts(board, piece, rot, 0, 0, gravity, timeline)
		placements = append(placements, placement)

		for shifts := 1; ; shifts++ {
			placement, ok := simulateShifts(board, piece, rot, 1, shifts, gravity, timeline)
			if !ok {
				break
			}
			placements = append(placements, placement)
		}
	}
	return placements
}

// simulateShifts plays out frame by frame a piece being tapped shifts times in direction dir
// while gravity pulls it down, then hard-drops it. It fails if the piece gets blocked or
// lands before the last shift.
func simulateShifts(board Board, piece Piece, rot, dir, shifts, gravity int, timeline InputFrameTimeline) (SimState, bool) {
	cells := piece.Rotations[rot]
	x, y := SpawnX, 0

	for frame := 0; shifts > 0; frame++ {
		if frame >= maxFrames {
			return SimState{}, false
		}
		if timeline.isInputFrame(frame) {
			if board.collides(cells, x+dir, y) {
				return SimState{}, false
			}
			x += dir
			shifts--
			if shifts == 0 {
				break
			}
		}
		if (frame+1)%gravity == 0 {
			if board.collides(cells, x, y+1) {
				return SimState{}, false
			}
			y++
		}
	}

	for !board.collides(cells, x, y+1) {
		y++
	}
	return SimState{Piece: piece, RotationIndex: rot, X: x, Y: y}, true
}
