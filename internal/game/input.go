package game

import "github.com/gdamore/tcell/v2"

// Action is a player command decoded from a key or mouse event.
type Action int

const (
	ActionNone Action = iota
	ActionReveal
	ActionMark
	ActionChord
	ActionNewGame
	ActionQuit
	ActionMove
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "reveal"
	case ActionMark:
		return "mark"
	case ActionChord:
		return "chord"
	case ActionNewGame:
		return "new_game"
	case ActionQuit:
		return "quit"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// keyAction decodes a key press. For ActionMove the cursor delta is returned.
func keyAction(key tcell.Key, ch rune) (action Action, dRow, dCol int) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0, 0
	case tcell.KeyEnter:
		return ActionReveal, 0, 0
	case tcell.KeyUp:
		return ActionMove, -1, 0
	case tcell.KeyDown:
		return ActionMove, 1, 0
	case tcell.KeyLeft:
		return ActionMove, 0, -1
	case tcell.KeyRight:
		return ActionMove, 0, 1
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return ActionReveal, 0, 0
		case 'f', 'F', 'm', 'M':
			return ActionMark, 0, 0
		case 'c', 'C':
			return ActionChord, 0, 0
		case 'n', 'N':
			return ActionNewGame, 0, 0
		case 'q', 'Q':
			return ActionQuit, 0, 0
		case 'k':
			return ActionMove, -1, 0
		case 'j':
			return ActionMove, 1, 0
		case 'h':
			return ActionMove, 0, -1
		case 'l':
			return ActionMove, 0, 1
		}
	}
	return ActionNone, 0, 0
}

// mouseAction decodes newly pressed buttons: left reveals, right marks,
// middle chords.
func mouseAction(pressed tcell.ButtonMask) Action {
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		return ActionReveal
	case pressed&tcell.ButtonSecondary != 0:
		return ActionMark
	case pressed&tcell.ButtonMiddle != 0:
		return ActionChord
	default:
		return ActionNone
	}
}
