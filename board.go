package sketch

import "image"

// Board is a complete drawing session: one surface, one live tool, the
// pen capturing strokes onto the surface, and the snapshot history
// supporting undo and redo.
//
// All operations are meant to be driven from a single event thread
// (pointer and toolbar events). The only asynchronous boundary is
// snapshot decoding during undo/redo; the Board guarantees that a
// stale decode never overwrites a newer state.
type Board struct {
	surface  *Surface
	tool     *Tool
	pen      *Pen
	history  *History
	restorer *restorer

	// OnChange, when set, is called after any visible mutation of the
	// surface: a drawn segment, a completed restore, or a clear. Async
	// restores invoke it from their own goroutine; hosts marshal to
	// their UI thread as needed.
	OnChange func()
}

// NewBoard creates a drawing session with a blank surface of the given
// logical dimensions.
func NewBoard(width, height int, opts ...BoardOption) *Board {
	options := defaultBoardOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := NewSurface(width, height, options.background)
	tool := NewTool()

	b := &Board{
		surface:  surface,
		tool:     tool,
		pen:      NewPen(surface, tool),
		history:  NewHistory(options.historyLimit),
		restorer: newRestorer(surface),
	}
	b.restorer.onApply = b.changed
	return b
}

// Surface returns the board's raster surface.
func (b *Board) Surface() *Surface {
	return b.surface
}

// Tool returns the live tool; hosts mutate it directly from their
// color and width controls.
func (b *Board) Tool() *Tool {
	return b.tool
}

// History returns the snapshot history, for button enablement and
// history-strip UIs.
func (b *Board) History() *History {
	return b.history
}

// BeginStroke starts a stroke at the given surface-space point.
func (b *Board) BeginStroke(p Point) {
	b.pen.Begin(p)
}

// ContinueStroke extends the in-progress stroke to p. A no-op when no
// stroke is in progress.
func (b *Board) ContinueStroke(p Point) {
	b.pen.Continue(p)
	if b.pen.Drawing() {
		b.changed()
	}
}

// EndStroke finalizes the in-progress stroke and commits a snapshot of
// the surface's pixel content together with the current tool settings.
// Redundant calls (pointer-up then pointer-leave) commit nothing.
func (b *Board) EndStroke() {
	if !b.pen.End() {
		return
	}

	// A fresh commit supersedes any in-flight historical render.
	b.restorer.invalidate()

	snap, err := CaptureSnapshot(b.surface, *b.tool)
	if err != nil {
		Logger().Warn("stroke commit failed", "err", err)
		return
	}
	b.history.Commit(snap)
	b.changed()
}

// Undo steps back one snapshot. The target snapshot's tool settings
// are restored immediately; its pixel content is decoded and applied
// asynchronously. At the first snapshot this is a silent no-op.
func (b *Board) Undo() {
	snap, ok := b.history.Undo()
	if !ok {
		return
	}
	b.tool.restoreFrom(snap)
	b.restorer.restore(snap)
}

// Redo steps forward one snapshot, with the same contract as Undo.
// At the last snapshot this is a silent no-op.
func (b *Board) Redo() {
	snap, ok := b.history.Redo()
	if !ok {
		return
	}
	b.tool.restoreFrom(snap)
	b.restorer.restore(snap)
}

// Clear wipes the surface to its background and empties the history.
// Clearing is unrecorded and cannot be undone; any in-flight restore
// is suppressed so it cannot repaint the cleared surface.
func (b *Board) Clear() {
	b.restorer.invalidate()
	b.history.Clear()
	b.surface.Clear()
	b.changed()
}

// CanUndo reports whether Undo would change state.
func (b *Board) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo reports whether Redo would change state.
func (b *Board) CanRedo() bool {
	return b.history.CanRedo()
}

// Image returns a copy of the current surface pixel content.
func (b *Board) Image() *image.NRGBA {
	return b.surface.Image()
}

// Flush blocks until pending snapshot restores have been applied or
// discarded. Hosts call it before reading pixels for export when an
// undo/redo may still be in flight; tests use it for determinism.
func (b *Board) Flush() {
	b.restorer.wait()
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}
