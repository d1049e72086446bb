package sketch

import "testing"

func TestMapPointer(t *testing.T) {
	tests := []struct {
		name     string
		pointer  Point
		rect     DisplayRect
		logicalW int
		logicalH int
		want     Point
	}{
		{
			name:     "identity at native size",
			pointer:  Pt(100, 200),
			rect:     DisplayRect{X: 0, Y: 0, W: 800, H: 600},
			logicalW: 800, logicalH: 600,
			want: Pt(100, 200),
		},
		{
			name:     "display scaled up 2x",
			pointer:  Pt(400, 300),
			rect:     DisplayRect{X: 0, Y: 0, W: 1600, H: 1200},
			logicalW: 800, logicalH: 600,
			want: Pt(200, 150),
		},
		{
			name:     "display scaled down",
			pointer:  Pt(200, 150),
			rect:     DisplayRect{X: 0, Y: 0, W: 400, H: 300},
			logicalW: 800, logicalH: 600,
			want: Pt(400, 300),
		},
		{
			name:     "offset rect maps corner to origin",
			pointer:  Pt(120, 80),
			rect:     DisplayRect{X: 120, Y: 80, W: 800, H: 600},
			logicalW: 800, logicalH: 600,
			want: Pt(0, 0),
		},
		{
			name:     "offset plus scale",
			pointer:  Pt(220, 130),
			rect:     DisplayRect{X: 20, Y: 30, W: 400, H: 200},
			logicalW: 800, logicalH: 600,
			want: Pt(400, 300),
		},
		{
			name:     "non-uniform scale handled per axis",
			pointer:  Pt(100, 100),
			rect:     DisplayRect{X: 0, Y: 0, W: 200, H: 400},
			logicalW: 800, logicalH: 800,
			want: Pt(400, 200),
		},
		{
			name:     "degenerate rect maps to origin",
			pointer:  Pt(50, 50),
			rect:     DisplayRect{},
			logicalW: 800, logicalH: 600,
			want: Pt(0, 0),
		},
		{
			name:     "pointer outside rect maps outside surface",
			pointer:  Pt(-10, -10),
			rect:     DisplayRect{X: 0, Y: 0, W: 100, H: 100},
			logicalW: 100, logicalH: 100,
			want: Pt(-10, -10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPointer(tt.pointer, tt.rect, tt.logicalW, tt.logicalH)
			const tolerance = 1e-9
			if absDiff(got.X, tt.want.X) > tolerance || absDiff(got.Y, tt.want.Y) > tolerance {
				t.Errorf("MapPointer(%v, %+v) = %v, want %v",
					tt.pointer, tt.rect, got, tt.want)
			}
		})
	}
}
