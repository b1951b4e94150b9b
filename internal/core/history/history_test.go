package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Empty(t *testing.T) {
	l := NewLog()

	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	_, ok := l.Undo()
	assert.False(t, ok)
	_, ok = l.Redo()
	assert.False(t, ok)
	_, ok = l.Current()
	assert.False(t, ok)
}

func TestLog_PushIdempotent(t *testing.T) {
	l := NewLog()

	require.True(t, l.Push(Snapshot{"a", "b"}))
	assert.False(t, l.Push(Snapshot{"a", "b"}), "identical snapshot is a no-op")
	assert.Equal(t, 1, l.Len())

	require.True(t, l.Push(Snapshot{"a", "c"}))
	assert.Equal(t, 2, l.Len())
}

func TestLog_DigestDistinguishesBoundaries(t *testing.T) {
	l := NewLog()
	require.True(t, l.Push(Snapshot{"ab", ""}))
	assert.True(t, l.Push(Snapshot{"a", "b"}), "region boundaries must be part of identity")
}

func TestLog_UndoRedoRoundTrip(t *testing.T) {
	l := NewLog()
	l.Reset(Snapshot{"initial"})
	l.Push(Snapshot{"edit one"})
	l.Push(Snapshot{"edit two"})

	before, ok := l.Current()
	require.True(t, ok)

	undone, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, Snapshot{"edit one"}, undone)

	redone, ok := l.Redo()
	require.True(t, ok)
	assert.Equal(t, before, redone, "undo then redo restores byte-identical content")
}

func TestLog_BranchTruncation(t *testing.T) {
	const n = 5
	const k = 3

	l := NewLog()
	l.Reset(Snapshot{"initial"})
	for i := range n {
		l.Push(Snapshot{fmt.Sprintf("edit %d", i)})
	}
	require.Equal(t, n+1, l.Len())

	for range k {
		_, ok := l.Undo()
		require.True(t, ok)
	}
	assert.True(t, l.CanRedo())

	// A new distinct edit destroys the redo branch.
	require.True(t, l.Push(Snapshot{"branch point"}))
	assert.Equal(t, (n-k)+1+1, l.Len()) // initial + surviving edits + new edit
	assert.False(t, l.CanRedo())

	_, ok := l.Redo()
	assert.False(t, ok)
}

func TestLog_Reset(t *testing.T) {
	l := NewLog()
	l.Push(Snapshot{"a"})
	l.Push(Snapshot{"b"})

	l.Reset(Snapshot{"fresh"})

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 0, l.Cursor())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, Snapshot{"fresh"}, cur)
}

func TestLog_SnapshotsAreCopied(t *testing.T) {
	l := NewLog()
	src := Snapshot{"original"}
	l.Push(src)
	src[0] = "mutated"

	cur, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, Snapshot{"original"}, cur)

	// Returned snapshots are copies too.
	cur[0] = "mutated again"
	again, _ := l.Current()
	assert.Equal(t, Snapshot{"original"}, again)
}

func TestLog_CursorInvariant(t *testing.T) {
	l := NewLog()
	l.Reset(Snapshot{"0"})
	for i := 1; i <= 4; i++ {
		l.Push(Snapshot{fmt.Sprintf("%d", i)})
	}

	// Walk the whole log in both directions; the cursor always stays in
	// bounds while entries exist.
	for l.CanUndo() {
		l.Undo()
		assert.GreaterOrEqual(t, l.Cursor(), 0)
	}
	for l.CanRedo() {
		l.Redo()
		assert.Less(t, l.Cursor(), l.Len())
	}
}
