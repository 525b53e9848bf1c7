package mandel

// ColorFor maps a divergence index to its pixel color. n == maxIter (the
// interior marker from Escape) is Black; otherwise three contiguous bands of
// size maxIter/3 blend red into green, green into blue, then fade blue out.
//
// The band arithmetic reproduces the reference renderer exactly, offsets and
// all: each band subtracts one segment more than its lower edge, and the
// negative intermediates wrap through the byte conversion the same way a C
// uint8_t cast does. Rederiving a "clean" gradient here would change the
// image bit-for-bit. Every band leaves at least one channel at zero and the
// alpha at zero, so no output ever equals the White sentinel.
func ColorFor(n, maxIter int) Pixel {
	if n >= maxIter {
		return Black
	}

	seg := maxIter / 3
	var p Pixel
	switch {
	case n >= 2*seg:
		p.B = uint8(0xFF - (n-3*seg)*0xFF/seg)
	case n >= seg:
		p.B = uint8((n - 2*seg) * 0xFF / seg)
		p.G = uint8(0xFF - (n-2*seg)*0xFF/seg)
	default:
		p.G = uint8((n - seg) * 0xFF / seg)
		p.R = uint8(0xFF - (n-seg)*0xFF/seg)
	}
	return p
}
