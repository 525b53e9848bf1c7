package mandel

import "testing"

func TestColorForBounded(t *testing.T) {
	if got := ColorFor(DefaultMaxIterations, DefaultMaxIterations); got != Black {
		t.Errorf("bounded color = %+v, want Black", got)
	}
}

func TestColorForNeverWhite(t *testing.T) {
	for n := 0; n <= DefaultMaxIterations; n++ {
		if got := ColorFor(n, DefaultMaxIterations); got == White {
			t.Fatalf("ColorFor(%d) produced the White sentinel", n)
		}
	}
}

// TestColorForReferenceBytes pins the exact band arithmetic, including the
// negative intermediates that wrap through the byte conversion. Segment size
// for 256 iterations is 85.
func TestColorForReferenceBytes(t *testing.T) {
	tests := []struct {
		n    int
		want Pixel
	}{
		{0, Pixel{R: 254, G: 1, B: 0, A: 0}},     // band 0 start
		{84, Pixel{R: 2, G: 253, B: 0, A: 0}},    // band 0 end
		{85, Pixel{R: 0, G: 254, B: 1, A: 0}},    // band 1 start
		{169, Pixel{R: 0, G: 2, B: 253, A: 0}},   // band 1 end
		{170, Pixel{R: 0, G: 0, B: 254, A: 0}},   // band 2 start
		{255, Pixel{R: 0, G: 0, B: 255, A: 0}},   // band 2 end
	}
	for _, tc := range tests {
		if got := ColorFor(tc.n, DefaultMaxIterations); got != tc.want {
			t.Errorf("ColorFor(%d) = %+v, want %+v", tc.n, got, tc.want)
		}
	}
}

func TestColorForBandChannels(t *testing.T) {
	seg := DefaultMaxIterations / 3
	for n := 0; n < DefaultMaxIterations; n++ {
		p := ColorFor(n, DefaultMaxIterations)
		if p.A != 0 {
			t.Fatalf("ColorFor(%d) alpha = %d, want 0", n, p.A)
		}
		switch {
		case n < seg:
			if p.B != 0 {
				t.Fatalf("ColorFor(%d) in band 0 has blue %d", n, p.B)
			}
		case n < 2*seg:
			if p.R != 0 {
				t.Fatalf("ColorFor(%d) in band 1 has red %d", n, p.R)
			}
		default:
			if p.R != 0 || p.G != 0 {
				t.Fatalf("ColorFor(%d) in band 2 has red %d green %d", n, p.R, p.G)
			}
		}
	}
}
