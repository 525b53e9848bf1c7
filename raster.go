package mandel

import "sync"

// Raster is the shared pixel buffer workers paint into and the display reads
// from. One coarse mutex guards the whole buffer: hold times are a single
// pixel compare-and-write or a memcpy, so correctness is cheap here.
//
// Synchronization contract: Fill, Claim and Snapshot lock internally. Pix
// exposes the backing slice and must only be touched between Lock and Unlock.
type Raster struct {
	mu   sync.Mutex
	w, h int
	pix  []Pixel
}

// NewRaster returns a w-by-h raster with every pixel set to the White
// "unpainted" sentinel.
func NewRaster(w, h int) *Raster {
	r := &Raster{w: w, h: h, pix: make([]Pixel, w*h)}
	r.Fill(White)
	return r
}

// Size returns the raster dimensions.
func (r *Raster) Size() (w, h int) {
	return r.w, r.h
}

// Lock acquires the raster lock for direct reads via Pix.
func (r *Raster) Lock() { r.mu.Lock() }

// Unlock releases the raster lock.
func (r *Raster) Unlock() { r.mu.Unlock() }

// Pix returns the backing pixel slice, row-major by y*width + x. The caller
// must hold the raster lock.
func (r *Raster) Pix() []Pixel {
	return r.pix
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c Pixel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pix {
		r.pix[i] = c
	}
}

// Claim writes c at (x, y) if the pixel still holds the White sentinel and
// reports whether the write happened. A false return means the pixel was
// already painted by someone else, which a worker treats as "this strip is
// covered" and abandons the rest of its scan.
func (r *Raster) Claim(x, y int, c Pixel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := y*r.w + x
	if r.pix[i] != White {
		return false
	}
	r.pix[i] = c
	return true
}

// Snapshot copies the raster into dst as RGBA bytes, row-major, 4 bytes per
// pixel, reusing dst if it is large enough. The copy is taken under the
// raster lock, so it is a consistent frame suitable for texture upload.
func (r *Raster) Snapshot(dst []byte) []byte {
	need := len(r.pix) * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.pix {
		dst[i*4+0] = p.R
		dst[i*4+1] = p.G
		dst[i*4+2] = p.B
		dst[i*4+3] = p.A
	}
	return dst
}
