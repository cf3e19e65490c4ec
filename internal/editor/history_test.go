package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryLinearUndoRedo(t *testing.T) {
	e := New()
	initial := e.Board()

	// Three distinct state-changing actions.
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Apply(func(b *Board) error {
			b.AddTier()
			return nil
		}))
	}
	assert.Equal(t, 4, e.history.Len())
	assert.Equal(t, 3, e.history.Pos())

	// Three undos return to the initial snapshot exactly.
	for i := 0; i < 3; i++ {
		assert.True(t, e.Undo())
	}
	assert.Equal(t, initial, e.Board())
	assert.False(t, e.CanUndo())

	// The first undo past the initial snapshot is a no-op.
	assert.False(t, e.Undo())
	assert.Equal(t, initial, e.Board())

	// Redo restores the exact snapshot that was undone.
	assert.True(t, e.Redo())
	assert.Equal(t, len(initial.Tiers)+1, len(e.Board().Tiers))
}

func TestHistoryPushDiscardsRedoBranch(t *testing.T) {
	e := New()

	require.NoError(t, e.Apply(func(b *Board) error { b.AddTier(); return nil }))
	require.NoError(t, e.Apply(func(b *Board) error { b.AddTier(); return nil }))

	assert.True(t, e.Undo())
	assert.True(t, e.CanRedo())

	// A new action after an undo discards the future.
	require.NoError(t, e.Apply(func(b *Board) error { b.AddTier(); return nil }))
	assert.False(t, e.CanRedo())
	assert.False(t, e.Redo())
}

func TestHistoryEvictsOldestAtLimit(t *testing.T) {
	b := Board{}
	h := NewHistory(b, 3)

	for i := 0; i < 5; i++ {
		next := b.Clone()
		for j := 0; j <= i; j++ {
			next.AddTier()
		}
		h.Push(next)
	}

	// Sliding window: only the limit's worth of snapshots survive, and the
	// pointer sits at the tip.
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Pos())

	// The initial snapshot is long gone; undo bottoms out at the oldest
	// retained snapshot.
	assert.True(t, h.CanUndo())
	prev, ok := h.Undo()
	require.True(t, ok)
	assert.Len(t, prev.Tiers, 4)
	_, ok = h.Undo()
	require.True(t, ok)
	assert.False(t, h.CanUndo())
}

func TestApplyErrorLeavesStateUntouched(t *testing.T) {
	e := New()
	before := e.Board()

	err := e.Apply(func(b *Board) error {
		b.AddTier()
		return b.RemoveTier("missing")
	})
	require.Error(t, err)
	assert.Equal(t, before, e.Board())
	assert.False(t, e.CanUndo())
}
