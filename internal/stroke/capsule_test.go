package stroke

import (
	"math"
	"testing"
)

// distToSegment returns the distance from p to the segment a-b.
func distToSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	len2 := d.X*d.X + d.Y*d.Y
	if len2 == 0 {
		return p.Sub(a).Length()
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / len2
	t = math.Max(0, math.Min(1, t))
	proj := Point{X: a.X + t*d.X, Y: a.Y + t*d.Y}
	return p.Sub(proj).Length()
}

func TestCapsule_OutlineLiesOnBoundary(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		width  float64
	}{
		{"horizontal", Point{10, 10}, Point{30, 10}, 6},
		{"vertical", Point{5, 5}, Point{5, 25}, 4},
		{"diagonal", Point{0, 0}, Point{20, 15}, 10},
		{"short segment", Point{1, 1}, Point{1.5, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := Capsule(tt.p0, tt.p1, tt.width)
			if len(outline) < 8 {
				t.Fatalf("outline has %d points, want at least 8", len(outline))
			}

			r := tt.width / 2
			for i, p := range outline {
				d := distToSegment(p, tt.p0, tt.p1)
				if math.Abs(d-r) > Tolerance+1e-9 {
					t.Errorf("point %d at distance %.4f from segment, want %.4f±%.2f",
						i, d, r, Tolerance)
				}
			}
		})
	}
}

func TestCapsule_BoundsIncludeCaps(t *testing.T) {
	outline := Capsule(Point{10, 10}, Point{30, 10}, 6)

	xMin, xMax := math.MaxFloat64, -math.MaxFloat64
	yMin, yMax := math.MaxFloat64, -math.MaxFloat64
	for _, p := range outline {
		xMin = math.Min(xMin, p.X)
		xMax = math.Max(xMax, p.X)
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	const slack = 0.2
	if xMin > 7+slack || xMax < 33-slack {
		t.Errorf("x bounds [%.2f, %.2f] do not reach the caps, want ~[7, 33]", xMin, xMax)
	}
	if yMin > 7+slack || yMax < 13-slack {
		t.Errorf("y bounds [%.2f, %.2f] do not span the width, want ~[7, 13]", yMin, yMax)
	}
	if xMin < 7-1e-9 || xMax > 33+1e-9 || yMin < 7-1e-9 || yMax > 13+1e-9 {
		t.Errorf("outline escapes the capsule bounds: [%.2f, %.2f]x[%.2f, %.2f]",
			xMin, xMax, yMin, yMax)
	}
}

func TestCapsule_DegenerateSegmentYieldsDisc(t *testing.T) {
	center := Point{8, 8}
	outline := Capsule(center, center, 5)

	if len(outline) < 2*minCapSteps {
		t.Fatalf("disc has %d points, want at least %d", len(outline), 2*minCapSteps)
	}
	for i, p := range outline {
		d := p.Sub(center).Length()
		if math.Abs(d-2.5) > 1e-9 {
			t.Errorf("disc point %d at radius %.4f, want 2.5", i, d)
		}
	}
}

func TestCapsule_ZeroWidth(t *testing.T) {
	if got := Capsule(Point{0, 0}, Point{10, 0}, 0); got != nil {
		t.Errorf("zero width returned %d points, want nil", len(got))
	}
	if got := Capsule(Point{0, 0}, Point{10, 0}, -3); got != nil {
		t.Errorf("negative width returned %d points, want nil", len(got))
	}
}

func TestCapSteps_RespectsTolerance(t *testing.T) {
	for _, r := range []float64{0.5, 1, 3, 10} {
		steps := capSteps(r)
		if steps < minCapSteps {
			t.Errorf("capSteps(%v) = %d, below minimum %d", r, steps, minCapSteps)
		}
		// Max chord deviation for the chosen step count stays within
		// tolerance.
		a := math.Pi / float64(steps)
		dev := r * (1 - math.Cos(a/2))
		if dev > Tolerance+1e-9 {
			t.Errorf("capSteps(%v) = %d gives deviation %.4f > %.2f", r, steps, dev, Tolerance)
		}
	}
}
