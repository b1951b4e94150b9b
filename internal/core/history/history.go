// Package history implements the whole-snapshot undo/redo log for editable
// document regions.
package history

import (
	"crypto/sha256"
	"encoding/binary"
)

// Snapshot is a complete capture of every editable region's text at one
// point in time, in fixed document order.
type Snapshot []string

// Log is a linear undo/redo log of snapshots. The cursor points at the
// snapshot matching the current document state; pushing while undone
// truncates the redo branch.
type Log struct {
	entries []Snapshot
	digests [][32]byte
	cursor  int
}

// NewLog returns an empty log with the cursor at -1.
func NewLog() *Log {
	return &Log{cursor: -1}
}

// digest hashes a snapshot for cheap idempotence checks. Lengths are mixed
// in so ["ab",""] and ["a","b"] never collide.
func digest(snap Snapshot) [32]byte {
	h := sha256.New()
	var buf [8]byte
	for _, s := range snap {
		binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Push records a snapshot. If the cursor is not at the end, every entry
// after it is discarded first (the redo branch is destroyed, not merged).
// A snapshot equal to the current entry is a no-op, so rapid identical
// pushes never grow the log. Returns true when an entry was appended.
func (l *Log) Push(snap Snapshot) bool {
	d := digest(snap)
	if l.cursor >= 0 && d == l.digests[l.cursor] {
		return false
	}

	l.entries = append(l.entries[:l.cursor+1], cloneSnapshot(snap))
	l.digests = append(l.digests[:l.cursor+1], d)
	l.cursor = len(l.entries) - 1
	return true
}

// Undo steps the cursor back and returns the snapshot to restore. It is a
// silent no-op at the earliest snapshot.
func (l *Log) Undo() (Snapshot, bool) {
	if l.cursor <= 0 {
		return nil, false
	}
	l.cursor--
	return cloneSnapshot(l.entries[l.cursor]), true
}

// Redo steps the cursor forward and returns the snapshot to restore. It is
// a silent no-op at the latest snapshot.
func (l *Log) Redo() (Snapshot, bool) {
	if l.cursor >= len(l.entries)-1 {
		return nil, false
	}
	l.cursor++
	return cloneSnapshot(l.entries[l.cursor]), true
}

// Current returns the snapshot under the cursor.
func (l *Log) Current() (Snapshot, bool) {
	if l.cursor < 0 {
		return nil, false
	}
	return cloneSnapshot(l.entries[l.cursor]), true
}

// Reset replaces the whole log with a single entry. Used when a new file
// is loaded so undo can always return to the just-loaded state.
func (l *Log) Reset(snap Snapshot) {
	l.entries = []Snapshot{cloneSnapshot(snap)}
	l.digests = [][32]byte{digest(snap)}
	l.cursor = 0
}

// CanUndo reports whether Undo would change state.
func (l *Log) CanUndo() bool {
	return l.cursor > 0
}

// CanRedo reports whether Redo would change state.
func (l *Log) CanRedo() bool {
	return l.cursor < len(l.entries)-1
}

// Len returns the number of stored snapshots.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the current cursor index, -1 when empty.
func (l *Log) Cursor() int {
	return l.cursor
}

func cloneSnapshot(snap Snapshot) Snapshot {
	out := make(Snapshot, len(snap))
	copy(out, snap)
	return out
}
