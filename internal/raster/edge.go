package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a non-horizontal line segment prepared for scanline
// rasterization. Edges are stored with y0 < y1; dir keeps the original
// direction for the non-zero winding rule.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

// NewEdge creates an edge from two points.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}
}

// XAtY returns the x coordinate of the edge at the given y.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// crossing is an edge intersection with a scanline.
type crossing struct {
	x   float64
	dir int
}

// crossingsAt collects the intersections of edges with the scanline at y
// into dst, returning the extended slice. dst is reused across scanlines
// to avoid per-line allocation.
func crossingsAt(edges []Edge, y float64, dst []crossing) []crossing {
	dst = dst[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= y && y < e.y1 {
			dst = append(dst, crossing{x: e.XAtY(y), dir: e.dir})
		}
	}
	// Insertion sort by x; crossing counts per scanline are small.
	for i := 1; i < len(dst); i++ {
		key := dst[i]
		j := i - 1
		for j >= 0 && dst[j].x > key.x {
			dst[j+1] = dst[j]
			j--
		}
		dst[j+1] = key
	}
	return dst
}
