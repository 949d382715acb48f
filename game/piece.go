package game

const (
	// SpawnX is the column of the left edge of a freshly spawned piece's bounding box
	SpawnX = 3

	spawnRows  = 2
	spawnWidth = 4
)

type Cell struct {
	X, Y int
}

// Piece describes a tetromino. Rotations holds the cell offsets of each distinct
// rotation relative to the top-left of the piece's 4x4 bounding box.
type Piece struct {
	ID        byte
	Index     int
	Rotations [][4]Cell
}

// PieceList is the piece catalog in NES order; sequences refer to pieces by index into it.
var PieceList = [NumPieces]Piece{
	{ID: 'T', Index: 0, Rotations: [][4]Cell{
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
	}},
	{ID: 'J', Index: 1, Rotations: [][4]Cell{
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
	}},
	{ID: 'Z', Index: 2, Rotations: [][4]Cell{
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	}},
	{ID: 'O', Index: 3, Rotations: [][4]Cell{
		{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	}},
	{ID: 'S', Index: 4, Rotations: [][4]Cell{
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	}},
	{ID: 'L', Index: 5, Rotations: [][4]Cell{
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	}},
	{ID: 'I', Index: 6, Rotations: [][4]Cell{
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	}},
}

const NumPieces = 7

// PieceByID looks up a piece by its letter
func PieceByID(id byte) (Piece, bool) {
	for _, p := range PieceList {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

func (p Piece) String() string {
	return string(p.ID)
}
