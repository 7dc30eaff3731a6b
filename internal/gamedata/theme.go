package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// GlyphDef is a display character with its color.
type GlyphDef struct {
	Glyph string `json:"glyph"` // Single character (e.g., "F")
	Color string `json:"color"` // Hex color code (e.g., "#FF0000")
}

// GlyphRune returns the glyph as a rune for rendering.
func (g GlyphDef) GlyphRune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (g GlyphDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ThemeDef defines how cells are drawn, loaded from theme.json.
type ThemeDef struct {
	Hidden    GlyphDef `json:"hidden"`
	Revealed  GlyphDef `json:"revealed"`
	Mark      GlyphDef `json:"mark"`
	WrongMark GlyphDef `json:"wrongMark"`
	Bomb      GlyphDef `json:"bomb"`
	Cursor    string   `json:"cursor"`  // Background of the cell under the cursor
	Numbers   []string `json:"numbers"` // Colors for neighbor counts 0-8
}

// LoadTheme loads the display theme from the embedded theme.json file.
func LoadTheme() (*ThemeDef, error) {
	theme, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	if len(theme.Numbers) != 9 {
		return nil, fmt.Errorf("theme.json: expected 9 number colors, got %d", len(theme.Numbers))
	}
	return &theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *ThemeDef {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// NumberColor returns the color for a neighbor count.
func (t *ThemeDef) NumberColor(n int) tcell.Color {
	if n < 0 || n >= len(t.Numbers) {
		return tcell.ColorWhite
	}
	color, err := ParseHexColor(t.Numbers[n])
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// CursorColor returns the cursor background color.
func (t *ThemeDef) CursorColor() tcell.Color {
	color, err := ParseHexColor(t.Cursor)
	if err != nil {
		return tcell.ColorDarkBlue
	}
	return color
}
