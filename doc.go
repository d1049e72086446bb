// Package sketch provides a freehand raster drawing surface with
// undo/redo history.
//
// # Overview
//
// sketch captures pointer motion as rendered pen strokes on a
// fixed-size pixel surface and maintains a linear, branch-truncating
// history of raster snapshots. Undo and redo restore both pixel
// content and the tool settings (width, color) active when each
// snapshot was captured. The result exports as PNG or a single-page
// PDF.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	b := sketch.NewBoard(800, 600)
//
//	// One stroke: pointer-down, moves, pointer-up.
//	b.Tool().SetWidth(4)
//	b.Tool().SetColor(sketch.Red)
//	b.BeginStroke(sketch.Pt(100, 100))
//	b.ContinueStroke(sketch.Pt(300, 200))
//	b.EndStroke()
//
//	b.Undo() // surface and tool return to the previous snapshot
//	b.Redo()
//
//	b.SavePNG("sketch.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Board, Surface, Pen, Tool, History, Snapshot
//   - Internal: stroke (capsule outlines), raster (scanline AA fill)
//   - Host app: cmd/sketchpad (Fyne desktop front end)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// MapPointer converts display-space pointer positions into surface
// space when the surface is shown scaled.
//
// # Concurrency
//
// All drawing and history operations are meant to run on one event
// thread. Snapshot decoding during undo/redo is asynchronous; restores
// are sequence-tagged so a stale decode never overwrites a newer
// state. The surface pixel buffer is mutex-guarded, so concurrent
// misuse degrades to last-writer-wins rather than torn writes.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"
