package engine

// Listener receives state-change notifications from an Engine.
// Calls are made synchronously from inside the action that caused them.
type Listener interface {
	// CellChanged fires after a cell's revealed or marked state changes.
	// Re-query the cell with Engine.Cell to redraw it.
	CellChanged(row, column int)
	// GameOver fires once, when a bomb is revealed.
	GameOver()
	// GameWon fires once, when the last non-bomb cell is revealed.
	GameWon()
}

// NopListener ignores all notifications.
type NopListener struct{}

func (NopListener) CellChanged(row, column int) {}
func (NopListener) GameOver()                   {}
func (NopListener) GameWon()                    {}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnCellChanged func(row, column int)
	OnGameOver    func()
	OnGameWon     func()
}

func (l ListenerFuncs) CellChanged(row, column int) {
	if l.OnCellChanged != nil {
		l.OnCellChanged(row, column)
	}
}

func (l ListenerFuncs) GameOver() {
	if l.OnGameOver != nil {
		l.OnGameOver()
	}
}

func (l ListenerFuncs) GameWon() {
	if l.OnGameWon != nil {
		l.OnGameWon()
	}
}
