package mandel

import "github.com/deepzoom/mandel/hp"

// PointAt maps pixel (x, y) on a w-by-h raster linearly into the viewport:
// (0, 0) lands exactly on (Left, Bottom) and (w-1, h-1) exactly on
// (Right, Top). The pixel ratio is formed in float64 and applied to the
// high-precision span, so the mapping stays exact at the corners and
// deterministic everywhere else.
func PointAt(x, y, w, h int, v Viewport) (re, im hp.Real) {
	re = v.Width().MulFloat(float64(x) / float64(w-1)).Add(v.Left)
	im = v.Height().MulFloat(float64(y) / float64(h-1)).Add(v.Bottom)
	return re, im
}

// Escape iterates z <- z*z + c from z = 0 for the point c = (re, im) and
// returns the 0-based iteration at which the squared modulus first reaches
// threshold. A return of maxIter means the point never diverged (interior).
// Every intermediate value stays in hp arithmetic at the precision of the
// inputs; zooming deep must not fall back to float64.
func Escape(re, im hp.Real, maxIter int, threshold float64) int {
	prec := re.Prec()
	zr := hp.NewWithPrec(0, prec)
	zi := hp.NewWithPrec(0, prec)
	zr2 := hp.NewWithPrec(0, prec)
	zi2 := hp.NewWithPrec(0, prec)

	for n := 0; n < maxIter; n++ {
		nzr := zr2.Sub(zi2).Add(re)
		nzi := zr.Mul(zi).MulFloat(2).Add(im)
		zr, zi = nzr, nzi

		zr2 = zr.Mul(zr)
		zi2 = zi.Mul(zi)
		if zr2.Add(zi2).CmpFloat(threshold) >= 0 {
			return n
		}
	}
	return maxIter
}
