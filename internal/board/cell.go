// Package board provides the minefield grid, mine placement and adjacency queries.
package board

// Cell is a single grid position.
type Cell struct {
	Row           int  // Fixed at creation
	Column        int  // Fixed at creation
	Bomb          bool // Set once during board construction
	NeighborCount int  // Bombs among the up to 8 neighbors, 0-8
	Revealed      bool // Monotonic, never reset once true
	Marked        bool // Only meaningful while unrevealed
}

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row, Column int
}

// Pos is shorthand for building a Position.
func Pos(row, column int) Position {
	return Position{Row: row, Column: column}
}
