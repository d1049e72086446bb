package main

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// colorSwatch is a tappable square of a single palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    sketch.RGBA
	OnTapped func(sketch.RGBA)
}

func newColorSwatch(c sketch.RGBA, tapped func(sketch.RGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.Color())
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// newToolbar assembles the pen controls, history buttons, and export
// actions for the given board.
func newToolbar(board *sketch.Board, cfg Config, win fyne.Window) fyne.CanvasObject {
	// Remember the pen color across eraser use.
	lastColor := sketch.Hex(cfg.PenColor)

	widthSlider := widget.NewSlider(sketch.MinWidth, sketch.MaxWidth)
	widthSlider.SetValue(float64(board.Tool().Width))
	widthSlider.OnChanged = func(v float64) {
		board.Tool().SetWidth(int(v))
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.Tool().SetColor(lastColor)
		}), // pen
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.Tool().SetColor(board.Surface().Background())
			board.Tool().SetWidth(sketch.MaxWidth)
			widthSlider.SetValue(sketch.MaxWidth)
		}), // eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			board.Undo()
			widthSlider.SetValue(float64(board.Tool().Width))
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			board.Redo()
			widthSlider.SetValue(float64(board.Tool().Width))
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			board.Clear()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePNG(board, win)
		}),
		widget.NewToolbarAction(theme.DocumentIcon(), func() {
			savePDF(board, win)
		}),
	)

	onColorTapped := func(c sketch.RGBA) {
		lastColor = c
		board.Tool().SetColor(c)
	}
	swatches := container.NewHBox()
	for _, hex := range cfg.Palette {
		swatches.Add(newColorSwatch(sketch.Hex(hex), onColorTapped))
	}

	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	return container.NewHBox(
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}

func savePNG(board *sketch.Board, win fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer func() {
			_ = wc.Close()
		}()
		board.Flush()
		if err := board.EncodePNG(wc); err != nil {
			slog.Warn("png export failed", "err", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("sketch.png")
	d.Show()
}

func savePDF(board *sketch.Board, win fyne.Window) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer func() {
			_ = wc.Close()
		}()
		board.Flush()
		if err := board.EncodePDF(wc); err != nil {
			slog.Warn("pdf export failed", "err", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("sketch.pdf")
	d.Show()
}
