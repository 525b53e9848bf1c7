package mandel

import "testing"

func TestNewRasterStartsWhite(t *testing.T) {
	r := NewRaster(16, 8)
	if w, h := r.Size(); w != 16 || h != 8 {
		t.Fatalf("Size() = %dx%d, want 16x8", w, h)
	}

	r.Lock()
	defer r.Unlock()
	for i, p := range r.Pix() {
		if p != White {
			t.Fatalf("pixel %d = %+v, want White", i, p)
		}
	}
}

func TestFill(t *testing.T) {
	r := NewRaster(8, 8)
	r.Fill(Black)

	r.Lock()
	defer r.Unlock()
	for i, p := range r.Pix() {
		if p != Black {
			t.Fatalf("pixel %d = %+v, want Black", i, p)
		}
	}
}

func TestClaim(t *testing.T) {
	r := NewRaster(8, 8)
	c := Pixel{R: 10, G: 20, B: 30}

	if !r.Claim(3, 5, c) {
		t.Fatal("claim of an unpainted pixel failed")
	}

	// A second claim must fail and leave the first write in place.
	if r.Claim(3, 5, Pixel{R: 99}) {
		t.Fatal("claim of a painted pixel succeeded")
	}

	r.Lock()
	got := r.Pix()[5*8+3]
	r.Unlock()
	if got != c {
		t.Errorf("pixel (3,5) = %+v, want %+v", got, c)
	}

	// A fill back to the sentinel makes the pixel claimable again.
	r.Fill(White)
	if !r.Claim(3, 5, c) {
		t.Error("claim after reset failed")
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRaster(4, 2)
	r.Fill(Black)
	r.Claim(1, 0, Pixel{R: 1, G: 2, B: 3, A: 4}) // fails: not White
	r.Fill(White)
	if !r.Claim(1, 0, Pixel{R: 1, G: 2, B: 3, A: 4}) {
		t.Fatal("claim failed")
	}

	buf := r.Snapshot(nil)
	if len(buf) != 4*2*4 {
		t.Fatalf("snapshot length %d, want %d", len(buf), 4*2*4)
	}

	// Pixel (1,0) sits at byte offset 4.
	if got := [4]byte(buf[4:8]); got != [4]byte{1, 2, 3, 4} {
		t.Errorf("pixel (1,0) bytes = %v, want [1 2 3 4]", got)
	}
	// Everything else is still the sentinel.
	if got := [4]byte(buf[0:4]); got != [4]byte{255, 255, 255, 255} {
		t.Errorf("pixel (0,0) bytes = %v, want white", got)
	}

	// A large enough dst is reused rather than reallocated.
	big := make([]byte, 64)
	out := r.Snapshot(big)
	if &out[0] != &big[0] {
		t.Error("snapshot reallocated despite sufficient capacity")
	}
}
