package board

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minefield/internal/telemetry"
)

var (
	// ErrInvalidConfiguration is returned when board dimensions or bomb count are unusable.
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Board is the minefield grid. Cells are indexed [row][column].
type Board struct {
	rows      int
	columns   int
	bombCount int
	cells     [][]Cell
}

// New creates a board with bombCount bombs placed uniformly at random.
// A nil rng is replaced by a time-seeded one.
func New(ctx context.Context, rows, columns, bombCount int, rng *rand.Rand) (*Board, error) {
	if err := validate(rows, columns, bombCount); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	b := allocate(rows, columns, bombCount)
	for _, idx := range sampleIndices(rows*columns, bombCount, rng) {
		b.placeBomb(idx/columns, idx%columns)
	}

	span.SetAttributes(
		attribute.Int("board.rows", rows),
		attribute.Int("board.columns", columns),
		attribute.Int("board.bombs", bombCount),
	)
	return b, nil
}

// NewWithBombs creates a board with bombs at exactly the given positions.
func NewWithBombs(rows, columns int, bombs []Position) (*Board, error) {
	if err := validate(rows, columns, len(bombs)); err != nil {
		return nil, err
	}

	b := allocate(rows, columns, len(bombs))
	for _, p := range bombs {
		if !b.InBounds(p.Row, p.Column) {
			return nil, fmt.Errorf("%w: bomb at (%d,%d) outside %dx%d grid",
				ErrInvalidConfiguration, p.Row, p.Column, rows, columns)
		}
		if b.cells[p.Row][p.Column].Bomb {
			return nil, fmt.Errorf("%w: duplicate bomb at (%d,%d)",
				ErrInvalidConfiguration, p.Row, p.Column)
		}
		b.placeBomb(p.Row, p.Column)
	}
	return b, nil
}

func validate(rows, columns, bombCount int) error {
	if rows <= 0 || columns <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidConfiguration, rows, columns)
	}
	if bombCount <= 0 || bombCount >= rows*columns {
		return fmt.Errorf("%w: bomb count must be in [1,%d), got %d",
			ErrInvalidConfiguration, rows*columns, bombCount)
	}
	return nil
}

func allocate(rows, columns, bombCount int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, columns)
		for c := range cells[r] {
			cells[r][c] = Cell{Row: r, Column: c}
		}
	}
	return &Board{
		rows:      rows,
		columns:   columns,
		bombCount: bombCount,
		cells:     cells,
	}
}

// sampleIndices picks k distinct indices from [0,n) with a partial Fisher-Yates shuffle.
func sampleIndices(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// placeBomb marks a cell as a bomb and bumps the count of every neighbor.
func (b *Board) placeBomb(row, column int) {
	b.cells[row][column].Bomb = true
	b.eachNeighbor(row, column, func(r, c int) {
		b.cells[r][c].NeighborCount++
	})
}

// eachNeighbor calls fn for every in-bounds neighbor in row-major order.
func (b *Board) eachNeighbor(row, column int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, column+dc
			if b.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// BombCount returns the number of bombs on the board.
func (b *Board) BombCount() int { return b.bombCount }

// InBounds reports whether the coordinate lies on the grid.
func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

func (b *Board) checkBounds(row, column int) error {
	if !b.InBounds(row, column) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board",
			ErrOutOfBounds, row, column, b.rows, b.columns)
	}
	return nil
}

// CellAt returns a copy of the cell at the given coordinate.
func (b *Board) CellAt(row, column int) (Cell, error) {
	if err := b.checkBounds(row, column); err != nil {
		return Cell{}, err
	}
	return b.cells[row][column], nil
}

// Neighbors returns the in-bounds neighbors of a cell in row-major order.
func (b *Board) Neighbors(row, column int) ([]Cell, error) {
	if err := b.checkBounds(row, column); err != nil {
		return nil, err
	}
	neighbors := make([]Cell, 0, 8)
	b.eachNeighbor(row, column, func(r, c int) {
		neighbors = append(neighbors, b.cells[r][c])
	})
	return neighbors, nil
}

// Bombs returns the bomb positions in row-major order.
func (b *Board) Bombs() []Position {
	bombs := make([]Position, 0, b.bombCount)
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c].Bomb {
				bombs = append(bombs, Pos(r, c))
			}
		}
	}
	return bombs
}

// Reveal flips a hidden, unmarked cell to revealed.
// It returns false if the cell was already revealed or is marked.
func (b *Board) Reveal(row, column int) (bool, error) {
	if err := b.checkBounds(row, column); err != nil {
		return false, err
	}
	cell := &b.cells[row][column]
	if cell.Revealed || cell.Marked {
		return false, nil
	}
	cell.Revealed = true
	return true, nil
}

// ToggleMark flips the mark on a hidden cell.
// It returns false if the cell is already revealed.
func (b *Board) ToggleMark(row, column int) (bool, error) {
	if err := b.checkBounds(row, column); err != nil {
		return false, err
	}
	cell := &b.cells[row][column]
	if cell.Revealed {
		return false, nil
	}
	cell.Marked = !cell.Marked
	return true, nil
}
