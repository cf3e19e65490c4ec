package editor

// DefaultHistoryLimit bounds the number of board snapshots kept for
// undo/redo.
const DefaultHistoryLimit = 50

// History is a linear undo stack of full board snapshots. Pushing while not
// at the tip discards the redo branch; exceeding the limit evicts the
// oldest snapshot and clamps the pointer.
type History struct {
	snapshots []Board
	pos       int
	limit     int
}

func NewHistory(initial Board, limit int) *History {
	if limit < 2 {
		limit = 2
	}
	return &History{
		snapshots: []Board{initial.Clone()},
		pos:       0,
		limit:     limit,
	}
}

// Push records a new snapshot after a state-changing action. Must not be
// called for changes produced by Undo or Redo replay.
func (h *History) Push(b Board) {
	h.snapshots = append(h.snapshots[:h.pos+1], b.Clone())
	if len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[1:]
	}
	h.pos = len(h.snapshots) - 1
}

// Undo moves the pointer back one snapshot. At the initial snapshot it is a
// no-op and reports false.
func (h *History) Undo() (Board, bool) {
	if h.pos == 0 {
		return Board{}, false
	}
	h.pos--
	return h.snapshots[h.pos].Clone(), true
}

// Redo moves the pointer forward one snapshot.
func (h *History) Redo() (Board, bool) {
	if h.pos >= len(h.snapshots)-1 {
		return Board{}, false
	}
	h.pos++
	return h.snapshots[h.pos].Clone(), true
}

func (h *History) CanUndo() bool { return h.pos > 0 }
func (h *History) CanRedo() bool { return h.pos < len(h.snapshots)-1 }
func (h *History) Len() int      { return len(h.snapshots) }
func (h *History) Pos() int      { return h.pos }
