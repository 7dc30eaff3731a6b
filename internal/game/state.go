// Package game provides the terminal game loop around the minesweeper engine.
package game

// State represents the current input mode.
type State int

const (
	// StatePlaying is the default mode where clicks and keys act on the board.
	StatePlaying State = iota
	// StateNotice shows a modal win/loss notice until a key or click dismisses it.
	StateNotice
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateNotice:
		return "notice"
	default:
		return "unknown"
	}
}
