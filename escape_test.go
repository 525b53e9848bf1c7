package mandel

import (
	"testing"

	"github.com/deepzoom/mandel/hp"
)

func TestPointAtCorners(t *testing.T) {
	v := DefaultViewport(DefaultPrecision)
	w, h := DefaultWidth, DefaultHeight

	re, im := PointAt(0, 0, w, h, v)
	sameReal(t, "corner (0,0) re", re, v.Left)
	sameReal(t, "corner (0,0) im", im, v.Bottom)

	re, im = PointAt(w-1, h-1, w, h, v)
	sameReal(t, "corner (w-1,h-1) re", re, v.Right)
	sameReal(t, "corner (w-1,h-1) im", im, v.Top)
}

func TestPointAtTopLeft(t *testing.T) {
	// Reference scenario: pixel (0, 767) of the default 1366x768 view maps
	// to exactly (-2.5, 1).
	v := DefaultViewport(DefaultPrecision)
	re, im := PointAt(0, 767, 1366, 768, v)
	if re.CmpFloat(-2.5) != 0 {
		t.Errorf("re = %s, want -2.5", re)
	}
	if im.CmpFloat(1) != 0 {
		t.Errorf("im = %s, want 1", im)
	}
}

func TestEscapeKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		re, im float64
		want   int
	}{
		// |c|^2 = 7.25 >= 4 right after the first update.
		{"top_left_corner", -2.5, 1, 0},
		// z1 = -2, |z1|^2 = 4 hits the threshold exactly.
		{"minus_two", -2, 0, 0},
		// z1 = 1, z2 = 2, |z2|^2 = 4.
		{"one", 1, 0, 1},
		// Period-two cycle 0 -> -1 -> 0: interior.
		{"minus_one", -1, 0, DefaultMaxIterations},
		// The origin never moves: interior.
		{"origin", 0, 0, DefaultMaxIterations},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Escape(hp.New(tc.re), hp.New(tc.im), DefaultMaxIterations, DefaultDivergeThreshold)
			if got != tc.want {
				t.Errorf("Escape(%g, %g) = %d, want %d", tc.re, tc.im, got, tc.want)
			}
		})
	}
}

func TestEscapeIdempotent(t *testing.T) {
	v := DefaultViewport(DefaultPrecision)
	re, im := PointAt(500, 300, DefaultWidth, DefaultHeight, v)

	first := Escape(re, im, DefaultMaxIterations, DefaultDivergeThreshold)
	for i := 0; i < 3; i++ {
		if got := Escape(re, im, DefaultMaxIterations, DefaultDivergeThreshold); got != first {
			t.Fatalf("call %d returned %d, first returned %d", i+2, got, first)
		}
	}
}

func TestEscapeRespectsIterationCap(t *testing.T) {
	// An interior point must report exactly the cap it was given.
	for _, limit := range []int{16, 64, 256} {
		if got := Escape(hp.New(0), hp.New(0), limit, DefaultDivergeThreshold); got != limit {
			t.Errorf("cap %d: got %d", limit, got)
		}
	}
}
