// Package raster provides scanline polygon rasterization with
// anti-aliasing for the sketch surface. Coverage is computed with exact
// horizontal spans and 4x vertical supersampling, then blended
// source-over onto the target pixmap.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
// Components are in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Pixmap is the write target for rasterization (avoids import cycle).
type Pixmap interface {
	Width() int
	Height() int
	// BlendPixelAlpha blends c over the existing pixel with the given
	// coverage alpha (0-255).
	BlendPixelAlpha(x, y int, c RGBA, alpha uint8)
}

// SubsampleCount is the number of vertical samples per pixel row.
const SubsampleCount = 4

// Rasterizer performs anti-aliased scanline rasterization of polygons.
// A Rasterizer is not safe for concurrent use; callers serialize access.
type Rasterizer struct {
	width  int
	height int
	cover  []float64  // per-row coverage accumulator, one entry per x
	active []crossing // scratch for scanline crossings
}

// NewRasterizer creates a rasterizer for targets of the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		cover:  make([]float64, width),
		active: make([]crossing, 0, 16),
	}
}

// FillAA rasterizes the closed polygon described by points onto pixmap
// using the non-zero winding rule. Consecutive points form edges; the
// polygon is treated as closed (a final edge connects the last point
// back to the first if they differ).
func (r *Rasterizer) FillAA(pixmap Pixmap, points []Point, color RGBA) {
	if len(points) < 3 || color.A == 0 {
		return
	}

	edges := buildEdges(points)
	if len(edges) == 0 {
		return
	}

	yMin, yMax, xMin, xMax := edgeBounds(edges)

	y0 := clampInt(int(math.Floor(yMin)), 0, pixmap.Height())
	y1 := clampInt(int(math.Ceil(yMax)), 0, pixmap.Height())
	x0 := clampInt(int(math.Floor(xMin)), 0, pixmap.Width())
	x1 := clampInt(int(math.Ceil(xMax)), 0, pixmap.Width())
	if y0 >= y1 || x0 >= x1 {
		return
	}

	for y := y0; y < y1; y++ {
		row := r.cover[x0:x1]
		for i := range row {
			row[i] = 0
		}

		for sub := 0; sub < SubsampleCount; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/SubsampleCount
			r.active = crossingsAt(edges, scanY, r.active)
			r.accumulateSpans(row, x0)
		}

		r.blendRow(pixmap, row, x0, y, color)
	}
}

// buildEdges converts a point loop into non-horizontal edges.
func buildEdges(points []Point) []Edge {
	edges := make([]Edge, 0, len(points))
	for i := 0; i < len(points); i++ {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if math.Abs(p1.Y-p0.Y) < 1e-9 {
			continue
		}
		edges = append(edges, NewEdge(p0, p1))
	}
	return edges
}

// edgeBounds returns the bounding box over all edges.
func edgeBounds(edges []Edge) (yMin, yMax, xMin, xMax float64) {
	yMin, xMin = math.MaxFloat64, math.MaxFloat64
	yMax, xMax = -math.MaxFloat64, -math.MaxFloat64
	for i := range edges {
		e := &edges[i]
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
		xMin = math.Min(xMin, math.Min(e.x0, e.x1))
		xMax = math.Max(xMax, math.Max(e.x0, e.x1))
	}
	return yMin, yMax, xMin, xMax
}

// accumulateSpans walks the sorted crossings with the non-zero winding
// rule and adds the covered spans into row. Span ends contribute
// fractional coverage so vertical edges are anti-aliased horizontally.
func (r *Rasterizer) accumulateSpans(row []float64, x0 int) {
	winding := 0
	var spanStart float64

	for _, c := range r.active {
		if winding == 0 {
			spanStart = c.x
		}
		winding += c.dir
		if winding == 0 {
			r.accumulateSpan(row, x0, spanStart, c.x)
		}
	}
}

// accumulateSpan adds coverage for the half-open span [xa, xb) into row.
// Each subsample contributes at most 1/SubsampleCount per pixel.
func (r *Rasterizer) accumulateSpan(row []float64, x0 int, xa, xb float64) {
	const w = 1.0 / SubsampleCount

	if xa > xb {
		xa, xb = xb, xa
	}
	if xa < float64(x0) {
		xa = float64(x0)
	}
	limit := float64(x0 + len(row))
	if xb > limit {
		xb = limit
	}
	if xa >= xb {
		return
	}

	ia := int(math.Floor(xa))
	ib := int(math.Floor(xb))

	if ia == ib {
		row[ia-x0] += (xb - xa) * w
		return
	}

	row[ia-x0] += (float64(ia+1) - xa) * w
	for x := ia + 1; x < ib; x++ {
		row[x-x0] += w
	}
	if ib-x0 < len(row) {
		row[ib-x0] += (xb - float64(ib)) * w
	}
}

// blendRow writes one row of accumulated coverage to the pixmap.
func (r *Rasterizer) blendRow(pixmap Pixmap, row []float64, x0, y int, color RGBA) {
	for i, c := range row {
		if c <= 0 {
			continue
		}
		if c > 1 {
			c = 1
		}
		alpha := uint8(c*255 + 0.5)
		if alpha == 0 {
			continue
		}
		pixmap.BlendPixelAlpha(x0+i, y, color, alpha)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
