package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// sketchWidget displays a sketch.Board and feeds pointer events into
// it. The widget may be shown at any size; pointer positions are
// mapped back into the board's logical resolution.
type sketchWidget struct {
	widget.BaseWidget
	board *sketch.Board
	img   *canvas.Image
}

var _ fyne.Widget = (*sketchWidget)(nil)
var _ fyne.Draggable = (*sketchWidget)(nil)
var _ desktop.Mouseable = (*sketchWidget)(nil)
var _ desktop.Hoverable = (*sketchWidget)(nil)

func newSketchWidget(board *sketch.Board) *sketchWidget {
	w := &sketchWidget{board: board}
	w.img = canvas.NewImageFromImage(board.Image())
	w.img.FillMode = canvas.ImageFillStretch
	w.img.SetMinSize(fyne.NewSize(400, 300))
	w.ExtendBaseWidget(w)

	// Restore completions arrive on their own goroutine; everything
	// else fires on the event thread. fyne.Do handles both.
	board.OnChange = func() {
		fyne.Do(w.refresh)
	}
	return w
}

func (w *sketchWidget) refresh() {
	w.img.Image = w.board.Image()
	w.img.Refresh()
}

// mapToSurface converts a widget-local event position into board
// surface coordinates.
func (w *sketchWidget) mapToSurface(pos fyne.Position) sketch.Point {
	size := w.Size()
	return sketch.MapPointer(
		sketch.Pt(float64(pos.X), float64(pos.Y)),
		sketch.DisplayRect{W: float64(size.Width), H: float64(size.Height)},
		w.board.Surface().Width(),
		w.board.Surface().Height(),
	)
}

func (w *sketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.BeginStroke(w.mapToSurface(e.Position))
	}
}

func (w *sketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.EndStroke()
	}
}

func (w *sketchWidget) Dragged(e *fyne.DragEvent) {
	w.board.ContinueStroke(w.mapToSurface(e.Position))
}

// DragEnd finalizes the stroke; EndStroke never double-commits when
// MouseUp already fired.
func (w *sketchWidget) DragEnd() {
	w.board.EndStroke()
}

// MouseOut ends an in-progress stroke when the pointer leaves the
// canvas mid-draw.
func (w *sketchWidget) MouseOut() {
	w.board.EndStroke()
}

func (w *sketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *sketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *sketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.img)
}
