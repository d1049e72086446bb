// Package stroke provides stroke outline generation for the sketch pen.
//
// A freehand polyline stroked with round caps and round joins is
// geometrically the union of per-segment capsules (a rectangle with a
// semicircular cap at each end). Rendering each incoming segment as a
// filled capsule therefore produces exactly the round-cap, round-join
// appearance without ever re-stroking the whole path.
package stroke

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Tolerance is the maximum distance a tessellated cap arc may deviate
// from the true semicircle, in pixels.
const Tolerance = 0.1

// minCapSteps is the minimum number of segments per semicircular cap.
const minCapSteps = 4

// Capsule returns the closed outline polygon of the segment from p0 to
// p1 stroked with the given width. A degenerate (zero-length) segment
// yields a disc around p0. The returned polygon winds in one direction
// so it fills correctly under the non-zero rule.
func Capsule(p0, p1 Point, width float64) []Point {
	r := width / 2
	if r <= 0 {
		return nil
	}

	d := p1.Sub(p0)
	length := d.Length()
	if length < 1e-9 {
		return disc(p0, r)
	}

	// Unit direction and left normal.
	ux, uy := d.X/length, d.Y/length
	nx, ny := -uy, ux

	steps := capSteps(r)
	outline := make([]Point, 0, 2*steps+4)

	// Left edge, p0 to p1.
	outline = append(outline,
		Point{X: p0.X + nx*r, Y: p0.Y + ny*r},
		Point{X: p1.X + nx*r, Y: p1.Y + ny*r},
	)

	// Cap around p1: from +normal through +direction to -normal.
	start := math.Atan2(ny, nx)
	outline = appendArc(outline, p1, r, start, -math.Pi, steps)

	// Right edge, p1 back to p0.
	outline = append(outline,
		Point{X: p1.X - nx*r, Y: p1.Y - ny*r},
		Point{X: p0.X - nx*r, Y: p0.Y - ny*r},
	)

	// Cap around p0: from -normal through -direction back to +normal.
	outline = appendArc(outline, p0, r, start+math.Pi, -math.Pi, steps)

	return outline
}

// disc returns a closed circle outline around center.
func disc(center Point, r float64) []Point {
	steps := 2 * capSteps(r)
	outline := make([]Point, 0, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		outline = append(outline, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return outline
}

// capSteps returns the number of line segments used to tessellate a
// semicircle of the given radius within Tolerance.
func capSteps(r float64) int {
	if r <= Tolerance {
		return minCapSteps
	}
	// Chord deviation for a step angle a is r*(1-cos(a/2)).
	step := 2 * math.Acos(1-Tolerance/r)
	steps := int(math.Ceil(math.Pi / step))
	if steps < minCapSteps {
		steps = minCapSteps
	}
	return steps
}

// appendArc appends the interior points of an arc around center,
// starting at angle start and sweeping by sweep radians in the given
// number of steps. Endpoints are excluded; the straight edges already
// contribute them.
func appendArc(outline []Point, center Point, r, start, sweep float64, steps int) []Point {
	for i := 1; i < steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		outline = append(outline, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return outline
}
