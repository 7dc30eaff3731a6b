package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minefield/internal/board"
	"github.com/samdwyer/minefield/internal/telemetry"
)

// Config holds the construction-time board parameters.
type Config struct {
	Rows    int
	Columns int
	Bombs   int
}

// Engine owns one board and the session state around it.
//
// An Engine is not safe for concurrent use. All actions must be issued from
// a single goroutine, or the engine wrapped in external locking.
type Engine struct {
	id         string
	board      *board.Board
	status     Status
	revealed   int
	marked     int
	countToWin int

	listener Listener
	logger   zerolog.Logger
	tracer   trace.Tracer
}

// New creates an engine with a freshly generated board.
func New(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	o := options{
		listener: NopListener{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = telemetry.Tracer("engine")
	}

	var (
		b   *board.Board
		err error
	)
	if o.layout != nil {
		if cfg.Bombs != 0 && cfg.Bombs != len(o.layout) {
			return nil, fmt.Errorf("%w: layout has %d bombs, config asks for %d",
				board.ErrInvalidConfiguration, len(o.layout), cfg.Bombs)
		}
		b, err = board.NewWithBombs(cfg.Rows, cfg.Columns, o.layout)
	} else {
		b, err = board.New(ctx, cfg.Rows, cfg.Columns, cfg.Bombs, o.rng)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	e := &Engine{
		id:         uuid.NewString(),
		board:      b,
		status:     InProgress,
		countToWin: b.Rows()*b.Columns() - b.BombCount(),
		listener:   o.listener,
		tracer:     o.tracer,
	}
	e.logger = o.logger.With().Str("game_id", e.id).Logger()
	e.logger.Debug().
		Int("rows", b.Rows()).
		Int("columns", b.Columns()).
		Int("bombs", b.BombCount()).
		Msg("game created")
	return e, nil
}

// ID returns the session identifier.
func (e *Engine) ID() string { return e.id }

// Status returns the current game status.
func (e *Engine) Status() Status { return e.status }

// RevealedCount returns how many cells have been revealed.
func (e *Engine) RevealedCount() int { return e.revealed }

// CountToWin returns the number of non-bomb cells.
func (e *Engine) CountToWin() int { return e.countToWin }

// MarkedCount returns how many cells are currently marked.
func (e *Engine) MarkedCount() int { return e.marked }

// RemainingBombs returns bombs minus marks. Negative when over-marked.
func (e *Engine) RemainingBombs() int { return e.board.BombCount() - e.marked }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.board.Rows() }

// Columns returns the board width.
func (e *Engine) Columns() int { return e.board.Columns() }

// BombCount returns the number of bombs on the board.
func (e *Engine) BombCount() int { return e.board.BombCount() }

// Reveal uncovers a cell, cascading over zero-count regions.
// It returns false when nothing changed: the game is over, or the cell is
// already revealed or marked.
func (e *Engine) Reveal(ctx context.Context, row, column int) (bool, error) {
	if _, err := e.board.CellAt(row, column); err != nil {
		return false, err
	}

	_, span := e.tracer.Start(ctx, "engine.reveal")
	defer span.End()

	n := e.reveal(row, column)
	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("column", column),
		attribute.Int("cells_revealed", n),
		attribute.String("status", e.status.String()),
	)
	if n > 1 {
		e.logger.Debug().Int("row", row).Int("column", column).Int("cells", n).Msg("cascade")
	}
	return n > 0, nil
}

// reveal runs the flood fill from one cell and returns how many cells it
// uncovered. It uses an explicit stack so large open regions cannot exhaust
// the call stack.
func (e *Engine) reveal(row, column int) int {
	count := 0
	stack := []board.Position{board.Pos(row, column)}

	for len(stack) > 0 && !e.status.Terminal() {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell, ok := e.revealOne(p.Row, p.Column)
		if !ok {
			continue
		}
		count++
		if e.status.Terminal() || cell.NeighborCount > 0 {
			continue
		}

		neighbors, _ := e.board.Neighbors(p.Row, p.Column)
		// Pushed in reverse so neighbors pop in row-major order
		for i := len(neighbors) - 1; i >= 0; i-- {
			n := neighbors[i]
			if !n.Revealed && !n.Marked {
				stack = append(stack, board.Pos(n.Row, n.Column))
			}
		}
	}
	return count
}

// revealOne uncovers a single cell and applies loss/win detection.
// It returns false if the cell could not be revealed.
func (e *Engine) revealOne(row, column int) (board.Cell, bool) {
	if e.status.Terminal() {
		return board.Cell{}, false
	}
	changed, err := e.board.Reveal(row, column)
	if err != nil || !changed {
		return board.Cell{}, false
	}
	e.revealed++
	e.listener.CellChanged(row, column)

	cell, _ := e.board.CellAt(row, column)
	switch {
	case cell.Bomb:
		e.status = Lost
		e.logger.Debug().Int("row", row).Int("column", column).Msg("bomb revealed, game lost")
		e.listener.GameOver()
	case e.revealed == e.countToWin:
		e.status = Won
		e.logger.Debug().Int("revealed", e.revealed).Msg("all safe cells revealed, game won")
		e.listener.GameWon()
	}
	return cell, true
}

// ToggleMark flips the mark on a hidden cell.
// It returns false if the game is over or the cell is revealed.
func (e *Engine) ToggleMark(ctx context.Context, row, column int) (bool, error) {
	if _, err := e.board.CellAt(row, column); err != nil {
		return false, err
	}
	if e.status.Terminal() {
		return false, nil
	}

	_, span := e.tracer.Start(ctx, "engine.toggle_mark")
	defer span.End()

	changed, err := e.board.ToggleMark(row, column)
	if err != nil || !changed {
		return false, err
	}

	cell, _ := e.board.CellAt(row, column)
	if cell.Marked {
		e.marked++
	} else {
		e.marked--
	}
	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("column", column),
		attribute.Bool("marked", cell.Marked),
	)
	e.listener.CellChanged(row, column)
	return true, nil
}

// Chord reveals every unmarked neighbor of a revealed numbered cell, provided
// the number of marked neighbors equals its bomb count. Marks are trusted: a
// wrongly marked neighbor leaves a bomb among those revealed and loses the game.
func (e *Engine) Chord(ctx context.Context, row, column int) (bool, error) {
	cell, err := e.board.CellAt(row, column)
	if err != nil {
		return false, err
	}
	if e.status.Terminal() || !cell.Revealed || cell.NeighborCount == 0 {
		return false, nil
	}

	neighbors, _ := e.board.Neighbors(row, column)
	marked := 0
	for _, n := range neighbors {
		if n.Marked {
			marked++
		}
	}
	if marked != cell.NeighborCount {
		return false, nil
	}

	_, span := e.tracer.Start(ctx, "engine.chord")
	defer span.End()

	total := 0
	for _, n := range neighbors {
		if n.Marked || n.Revealed {
			continue
		}
		total += e.reveal(n.Row, n.Column)
		if e.status.Terminal() {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("row", row),
		attribute.Int("column", column),
		attribute.Int("cells_revealed", total),
		attribute.String("status", e.status.String()),
	)
	e.logger.Debug().Int("row", row).Int("column", column).Int("cells", total).Msg("chord")
	return total > 0, nil
}
