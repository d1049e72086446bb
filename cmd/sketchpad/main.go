// Command sketchpad is a desktop freehand drawing app built on the
// sketch library: a fixed-resolution pen surface with snapshot-based
// undo/redo, exporting to PNG or PDF.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/gogpu/sketch"
)

func main() {
	configPath := flag.String("config", "sketchpad.toml", "path to config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	sketch.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	board := sketch.NewBoard(cfg.Width, cfg.Height,
		sketch.WithBackground(sketch.Hex(cfg.Background)),
		sketch.WithHistoryLimit(cfg.HistoryLimit),
	)
	board.Tool().SetWidth(cfg.PenWidth)
	board.Tool().SetHexColor(cfg.PenColor)

	a := app.New()
	win := a.NewWindow("Sketchpad")
	win.Resize(fyne.NewSize(1024, 768))

	surface := newSketchWidget(board)
	toolbar := newToolbar(board, cfg, win)

	win.SetContent(container.NewBorder(toolbar, nil, nil, nil, surface))
	win.ShowAndRun()
}
