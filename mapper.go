package sketch

// DisplayRect is the displayed bounding rectangle of a surface in
// display pixels: its top-left corner and displayed size.
type DisplayRect struct {
	X, Y float64
	W, H float64
}

// MapPointer converts a raw pointer position in display coordinates
// into surface-space coordinates, compensating for any scaling between
// the surface's logical resolution and its displayed size:
//
//	surfaceX = (pointerX - rect.X) * logicalW / rect.W
//
// and similarly for Y. MapPointer is a pure function with no error
// conditions; callers must not drive drawing operations before the
// surface is displayed (a degenerate zero-size rect maps to the
// origin).
func MapPointer(pointer Point, rect DisplayRect, logicalW, logicalH int) Point {
	var x, y float64
	if rect.W > 0 {
		x = (pointer.X - rect.X) * float64(logicalW) / rect.W
	}
	if rect.H > 0 {
		y = (pointer.Y - rect.Y) * float64(logicalH) / rect.H
	}
	return Point{X: x, Y: y}
}
