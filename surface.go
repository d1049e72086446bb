package sketch

import (
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/internal/stroke"
)

// Surface is the fixed-size raster canvas being drawn on. It owns the
// pixel buffer for the lifetime of a drawing session.
//
// The buffer is mutated by exactly one of {pen segment draws, snapshot
// restores, clear} at a time; every mutating method takes the surface
// mutex for its whole operation so concurrent callers get last-writer-
// wins semantics without torn pixel writes.
type Surface struct {
	mu         sync.Mutex
	pixmap     *Pixmap
	rasterizer *raster.Rasterizer
	background RGBA
}

// NewSurface creates a surface with the given logical dimensions and
// background color, cleared to the background.
func NewSurface(width, height int, background RGBA) *Surface {
	s := &Surface{
		pixmap:     NewPixmap(width, height),
		rasterizer: raster.NewRasterizer(width, height),
		background: background,
	}
	s.pixmap.Clear(background)
	return s
}

// Width returns the logical width of the surface in pixels.
func (s *Surface) Width() int {
	return s.pixmap.Width()
}

// Height returns the logical height of the surface in pixels.
func (s *Surface) Height() int {
	return s.pixmap.Height()
}

// Background returns the surface background color.
func (s *Surface) Background() RGBA {
	return s.background
}

// Clear wipes the surface to its background color.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixmap.Clear(s.background)
}

// DrawSegment rasterizes one stroke segment from p0 to p1 with round
// caps. Adjacent segments of a stroke overlap at their shared endpoint
// cap, which is exactly a round join.
func (s *Surface) DrawSegment(p0, p1 Point, width float64, c RGBA) {
	outline := stroke.Capsule(
		stroke.Point{X: p0.X, Y: p0.Y},
		stroke.Point{X: p1.X, Y: p1.Y},
		width,
	)
	if len(outline) == 0 {
		return
	}

	points := make([]raster.Point, len(outline))
	for i, pt := range outline {
		points[i] = raster.Point{X: pt.X, Y: pt.Y}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rasterizer.FillAA(&surfaceTarget{s.pixmap}, points, raster.RGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: c.A,
	})
}

// SetImage overwrites the full pixel buffer from img (snapshot restore).
func (s *Surface) SetImage(img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pixmap.SetImage(img)
}

// Image returns a copy of the current pixel content.
func (s *Surface) Image() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pixmap.ToImage()
}

// EncodePNG writes the surface pixels as PNG to the given writer.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// surfaceTarget adapts Pixmap to the raster.Pixmap interface.
type surfaceTarget struct {
	pixmap *Pixmap
}

func (t *surfaceTarget) Width() int {
	return t.pixmap.Width()
}

func (t *surfaceTarget) Height() int {
	return t.pixmap.Height()
}

func (t *surfaceTarget) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	t.pixmap.BlendPixelAlpha(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, alpha)
}
