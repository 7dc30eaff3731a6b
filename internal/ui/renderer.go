package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minefield/internal/engine"
	"github.com/samdwyer/minefield/internal/gamedata"
)

const (
	// Board origin on screen, below the status line
	boardX = 1
	boardY = 2
	// Each cell is drawn as its glyph followed by a space
	cellWidth = 2
)

// BoardView is the read-only state the renderer draws from.
type BoardView interface {
	Rows() int
	Columns() int
	Cell(row, column int) (engine.CellView, error)
	Status() engine.Status
	RemainingBombs() int
}

// Canvas is the drawing surface. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen Canvas
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen Canvas, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the status line, the board with the cursor, an optional
// modal notice and the key help.
func (r *Renderer) Render(board BoardView, cursorRow, cursorCol int, notice string) {
	r.screen.Clear()

	r.drawText(boardX, 0, StatusLine(board), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Columns(); col++ {
			v, err := board.Cell(row, col)
			if err != nil {
				continue
			}
			glyph, style := r.CellGlyph(v, board.Status())
			if row == cursorRow && col == cursorCol {
				style = style.Background(r.theme.CursorColor())
			}
			x, y := CellOrigin(row, col)
			r.screen.SetContent(x, y, glyph, style)
		}
	}

	helpY := boardY + board.Rows() + 1
	r.drawText(boardX, helpY, "click: reveal  right: mark  middle: chord", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.drawText(boardX, helpY+1, "space reveal  f mark  c chord  n new  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	if notice != "" {
		r.drawNotice(board, notice)
	}

	r.screen.Show()
}

// CellGlyph returns the rune and style for a cell view.
func (r *Renderer) CellGlyph(v engine.CellView, status engine.Status) (rune, tcell.Style) {
	base := tcell.StyleDefault
	switch {
	case v.WrongMark(status):
		return r.theme.WrongMark.GlyphRune(), base.Foreground(r.theme.WrongMark.TCellColor())
	case v.Marked:
		return r.theme.Mark.GlyphRune(), base.Foreground(r.theme.Mark.TCellColor()).Bold(true)
	case v.Bomb:
		style := base.Foreground(r.theme.Bomb.TCellColor()).Bold(true)
		if v.Revealed {
			// The bomb that ended the game
			style = style.Reverse(true)
		}
		return r.theme.Bomb.GlyphRune(), style
	case !v.Revealed:
		return r.theme.Hidden.GlyphRune(), base.Foreground(r.theme.Hidden.TCellColor())
	case v.NeighborCount == 0:
		return r.theme.Revealed.GlyphRune(), base.Foreground(r.theme.Revealed.TCellColor())
	default:
		return rune('0' + v.NeighborCount), base.Foreground(r.theme.NumberColor(v.NeighborCount)).Bold(true)
	}
}

// drawNotice draws a boxed message centered over the board.
func (r *Renderer) drawNotice(board BoardView, msg string) {
	text := " " + msg + " "
	width := len([]rune(text)) + 2
	x := boardX + (board.Columns()*cellWidth-width)/2
	if x < 0 {
		x = 0
	}
	y := boardY + board.Rows()/2 - 1

	style := tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true)
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, '─', style)
		r.screen.SetContent(x+i, y+2, '─', style)
	}
	r.screen.SetContent(x, y+1, '│', style)
	r.drawText(x+1, y+1, text, style)
	r.screen.SetContent(x+width-1, y+1, '│', style)
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}

// StatusLine summarizes the game for the header.
func StatusLine(board BoardView) string {
	state := "Playing"
	switch board.Status() {
	case engine.Won:
		state = "You win!"
	case engine.Lost:
		state = "Game over"
	}
	return fmt.Sprintf("Bombs: %3d   %s", board.RemainingBombs(), state)
}

// CellOrigin returns the screen position of a board cell.
func CellOrigin(row, col int) (x, y int) {
	return boardX + col*cellWidth, boardY + row
}

// CellAtPoint maps a screen position back to a board cell. The spacer
// column after each glyph belongs to no cell.
func CellAtPoint(x, y, rows, columns int) (row, col int, ok bool) {
	if x < boardX || y < boardY || (x-boardX)%cellWidth != 0 {
		return 0, 0, false
	}
	row = y - boardY
	col = (x - boardX) / cellWidth
	if row >= rows || col >= columns {
		return 0, 0, false
	}
	return row, col, true
}
