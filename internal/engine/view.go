package engine

// CellView is a read-only snapshot of a cell for presentation.
// Bomb and NeighborCount stay zero for hidden cells so that hidden state is
// never exposed; once the game is lost every bomb is shown.
type CellView struct {
	Row           int
	Column        int
	Revealed      bool
	Marked        bool
	Bomb          bool
	NeighborCount int
}

// WrongMark reports whether a marked cell turned out not to be a bomb.
// Only meaningful after the game is lost.
func (v CellView) WrongMark(status Status) bool {
	return status == Lost && v.Marked && !v.Bomb
}

// Cell returns the view of the cell at the given coordinate.
func (e *Engine) Cell(row, column int) (CellView, error) {
	cell, err := e.board.CellAt(row, column)
	if err != nil {
		return CellView{}, err
	}

	v := CellView{
		Row:      cell.Row,
		Column:   cell.Column,
		Revealed: cell.Revealed,
		Marked:   cell.Marked,
	}
	if cell.Revealed {
		v.Bomb = cell.Bomb
		v.NeighborCount = cell.NeighborCount
	}
	if e.status == Lost {
		v.Bomb = cell.Bomb
	}
	return v, nil
}
