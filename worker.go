package mandel

import (
	"context"
	"log"
)

// Region is a pixel-space rectangle assigned to one worker, half-open on
// Right and Top: x in [Left, Right), y in [Bottom, Top).
type Region struct {
	Left, Right, Top, Bottom int
}

// splitStrips partitions a w-by-h raster into at most n equal-width vertical
// strips spanning the full height. The i*w/n boundary arithmetic makes the
// partition exact: no gaps, no overlaps, whatever the remainder of w/n.
// This is a deliberate one-shot split, not a recursive subdivision.
func splitStrips(w, h, n int) []Region {
	regions := make([]Region, 0, n)
	for i := 0; i < n; i++ {
		x0 := i * w / n
		x1 := (i + 1) * w / n
		if x0 == x1 {
			continue // more workers than columns
		}
		regions = append(regions, Region{Left: x0, Right: x1, Bottom: 0, Top: h})
	}
	return regions
}

// worker paints one strip, scanning rows bottom to top and pixels left to
// right. Cancellation is cooperative: the context is checked once per row,
// so a drained worker stops within one row's worth of pixels. If a pixel
// turns out to be already painted the whole remaining scan is abandoned;
// under the exact strip partition that only happens when another pass
// already covered this strip.
func (e *Engine) worker(ctx context.Context, idx int, reg Region, v Viewport, done chan struct{}) {
	defer close(done)
	defer e.release(idx)

	log.Printf("worker %d: columns [%d, %d)", idx, reg.Left, reg.Right)

	w, h := e.raster.Size()
	for y := reg.Bottom; y < reg.Top; y++ {
		select {
		case <-ctx.Done():
			log.Printf("worker %d: cancelled at row %d", idx, y)
			return
		default:
		}

		for x := reg.Left; x < reg.Right; x++ {
			re, im := PointAt(x, y, w, h, v)
			n := Escape(re, im, e.cfg.MaxIterations, e.cfg.DivergeThreshold)
			if !e.raster.Claim(x, y, ColorFor(n, e.cfg.MaxIterations)) {
				log.Printf("worker %d: pixel (%d, %d) already painted, abandoning strip", idx, x, y)
				return
			}
		}
	}
}
