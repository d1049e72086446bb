package sketch

// History is a linear, branch-truncating sequence of committed
// snapshots with a cursor pointing at the current one. The cursor is
// -1 while the history is empty; otherwise it satisfies
// 0 <= index <= len-1. Only the methods below mutate the sequence, so
// the invariants live in one place.
//
// History is not safe for concurrent use; the Board serializes access
// on the event thread.
type History struct {
	snapshots []Snapshot
	index     int
	limit     int // 0 = unbounded
}

// NewHistory creates an empty history. limit bounds the number of
// retained snapshots; 0 keeps everything. When the limit is exceeded
// the oldest snapshots are dropped and the cursor shifts with them.
func NewHistory(limit int) *History {
	return &History{
		snapshots: make([]Snapshot, 0, 16),
		index:     -1,
		limit:     limit,
	}
}

// Commit appends a snapshot at the cursor, discarding any snapshots
// beyond it first. Redo history is lost once a new stroke is committed
// after an undo; this is the only mutation that can shrink the
// sequence from the tail.
func (h *History) Commit(s Snapshot) {
	h.snapshots = append(h.snapshots[:h.index+1], s)
	h.index++

	if h.limit > 0 && len(h.snapshots) > h.limit {
		excess := len(h.snapshots) - h.limit
		h.snapshots = h.snapshots[excess:]
		h.index -= excess
	}
}

// Undo moves the cursor back one snapshot and returns the snapshot the
// caller must render and restore tool state from. At the first
// snapshot (or on empty history) it is a no-op returning false.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.index--
	return h.snapshots[h.index], true
}

// Redo moves the cursor forward one snapshot, with the same render and
// restore contract as Undo. At the last snapshot it is a no-op
// returning false.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.index++
	return h.snapshots[h.index], true
}

// Clear empties the history. Clearing is unrecorded: it does not push
// a blank snapshot, so it cannot itself be undone.
func (h *History) Clear() {
	h.snapshots = h.snapshots[:0]
	h.index = -1
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

// Len returns the number of committed snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the cursor position, -1 when the history is empty.
func (h *History) Index() int {
	return h.index
}

// Current returns the snapshot at the cursor.
func (h *History) Current() (Snapshot, bool) {
	if h.index < 0 {
		return Snapshot{}, false
	}
	return h.snapshots[h.index], true
}
