// Package engine runs a single minesweeper session: reveals, marks, chords
// and win/loss detection over a board it owns exclusively.
package engine

// Status is the game-wide state of a session.
type Status int

const (
	// InProgress - actions are accepted
	InProgress Status = iota
	// Won - every non-bomb cell has been revealed
	Won
	// Lost - a bomb was revealed
	Lost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}
