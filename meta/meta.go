// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines sharing the playouts of one evaluation.
const GO_ROUTINES = 4

// PLAYOUTS defines the number of canonical sequences averaged per evaluation.
const PLAYOUTS = 7

// BREADTH defines how many placements per piece are valued with playouts.
const BREADTH = 5

// START_LEVEL defines the level a game starts on.
const START_LEVEL = 18

// MAX_PIECES defines the number of pieces after which a game is stopped.
const MAX_PIECES = 300

// SEED defines the seed of the piece generator.
const SEED = 1
