package editor

// Editor couples the working board with its undo history. All mutations
// should go through Apply so snapshots are recorded exactly once per
// state-changing action and never during undo/redo replay.
type Editor struct {
	board   Board
	history *History
}

func New() *Editor {
	b := NewBoard()
	return &Editor{board: b, history: NewHistory(b, DefaultHistoryLimit)}
}

// NewFromBoard starts an editing session on a loaded board (e.g. reopening
// a saved tier list).
func NewFromBoard(b Board) *Editor {
	return &Editor{board: b.Clone(), history: NewHistory(b, DefaultHistoryLimit)}
}

// Board returns a copy of the working state.
func (e *Editor) Board() Board { return e.board.Clone() }

// Apply runs a mutation against the working board and pushes a snapshot on
// success. On error the working state is left untouched.
func (e *Editor) Apply(mutate func(*Board) error) error {
	next := e.board.Clone()
	if err := mutate(&next); err != nil {
		return err
	}
	e.board = next
	e.history.Push(next)
	return nil
}

func (e *Editor) Undo() bool {
	b, ok := e.history.Undo()
	if ok {
		e.board = b
	}
	return ok
}

func (e *Editor) Redo() bool {
	b, ok := e.history.Redo()
	if ok {
		e.board = b
	}
	return ok
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }
