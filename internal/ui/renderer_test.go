package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/minefield/internal/board"
	"github.com/samdwyer/minefield/internal/engine"
	"github.com/samdwyer/minefield/internal/gamedata"
)

// fakeCanvas records drawn runes by position.
type fakeCanvas struct {
	cells map[[2]int]rune
	shown int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) Clear() { c.cells = make(map[[2]int]rune) }
func (c *fakeCanvas) Show()  { c.shown++ }
func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = r
}

func (c *fakeCanvas) line(y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, ok := c.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func newEngine(t *testing.T, rows, columns int, bombs ...board.Position) *engine.Engine {
	t.Helper()
	e, err := engine.New(context.Background(), engine.Config{Rows: rows, Columns: columns}, engine.WithLayout(bombs...))
	require.NoError(t, err)
	return e
}

func TestCellGlyph(t *testing.T) {
	r := NewRenderer(newFakeCanvas(), gamedata.MustLoadTheme())

	tests := []struct {
		name   string
		view   engine.CellView
		status engine.Status
		want   rune
	}{
		{"hidden", engine.CellView{}, engine.InProgress, '·'},
		{"marked", engine.CellView{Marked: true}, engine.InProgress, 'F'},
		{"empty", engine.CellView{Revealed: true}, engine.InProgress, ' '},
		{"number", engine.CellView{Revealed: true, NeighborCount: 3}, engine.InProgress, '3'},
		{"bomb after loss", engine.CellView{Bomb: true}, engine.Lost, '*'},
		{"marked bomb after loss", engine.CellView{Bomb: true, Marked: true}, engine.Lost, 'F'},
		{"wrong mark after loss", engine.CellView{Marked: true}, engine.Lost, 'X'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := r.CellGlyph(tt.view, tt.status)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderBoard(t *testing.T) {
	canvas := newFakeCanvas()
	r := NewRenderer(canvas, gamedata.MustLoadTheme())
	e := newEngine(t, 3, 3, board.Pos(1, 1))

	_, err := e.Reveal(context.Background(), 0, 0)
	require.NoError(t, err)
	_, err = e.ToggleMark(context.Background(), 2, 2)
	require.NoError(t, err)

	r.Render(e, 0, 0, "")

	assert.Equal(t, 1, canvas.shown)
	assert.Contains(t, canvas.line(0, 40), "Bombs:   0")
	assert.Contains(t, canvas.line(0, 40), "Playing")
	assert.Equal(t, " 1 · · ", canvas.line(boardY, 7))
	assert.Equal(t, " · · · ", canvas.line(boardY+1, 7), "hidden bomb is not drawn")
	assert.Equal(t, " · · F ", canvas.line(boardY+2, 7))
}

func TestRenderNotice(t *testing.T) {
	canvas := newFakeCanvas()
	r := NewRenderer(canvas, gamedata.MustLoadTheme())
	e := newEngine(t, 5, 10, board.Pos(0, 0))

	r.Render(e, -1, -1, "Game Over")

	found := false
	for y := 0; y < 10; y++ {
		if strings.Contains(canvas.line(y, 30), "Game Over") {
			found = true
		}
	}
	assert.True(t, found, "notice should be drawn")
}

func TestStatusLine(t *testing.T) {
	e := newEngine(t, 1, 2, board.Pos(0, 1))
	assert.Contains(t, StatusLine(e), "Playing")

	_, err := e.Reveal(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Contains(t, StatusLine(e), "You win!")

	lost := newEngine(t, 1, 2, board.Pos(0, 1))
	_, err = lost.Reveal(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Contains(t, StatusLine(lost), "Game over")
}

func TestCellAtPoint(t *testing.T) {
	tests := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{boardX, boardY, 0, 0, true},
		{boardX + 1, boardY, 0, 0, false},
		{boardX + 2, boardY + 1, 1, 1, true},
		{boardX + 3, boardY + 1, 0, 0, false},
		{boardX + 18, boardY + 4, 4, 9, true},
		{boardX + 19, boardY + 4, 0, 0, false},
		{boardX + 20, boardY, 0, 0, false},
		{boardX, boardY + 5, 0, 0, false},
		{0, boardY, 0, 0, false},
		{boardX, 0, 0, 0, false},
	}
	for _, tt := range tests {
		row, col, ok := CellAtPoint(tt.x, tt.y, 5, 10)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.row, row, "(%d,%d)", tt.x, tt.y)
			assert.Equal(t, tt.col, col, "(%d,%d)", tt.x, tt.y)
		}
	}

	// Round trip with CellOrigin
	x, y := CellOrigin(3, 7)
	row, col, ok := CellAtPoint(x, y, 5, 10)
	assert.True(t, ok)
	assert.Equal(t, 3, row)
	assert.Equal(t, 7, col)
}
