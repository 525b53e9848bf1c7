// Package mandel is a parallel, arbitrary-precision Mandelbrot engine.
//
// The engine paints an escape-time image into a shared raster using a fixed
// pool of strip workers. Coordinates are fixed-precision reals (package hp),
// so the view keeps resolving detail far past float64 zoom depth. Display and
// input are external collaborators: they read the raster under its lock and
// feed navigation commands back into the engine.
package mandel

import "github.com/deepzoom/mandel/hp"

// Pixel is one RGBA raster cell. The color doubles as paint state: White
// means "not yet computed", Black means "confirmed interior point", anything
// else is a divergence color. The palette never produces White, which is what
// lets workers detect already-claimed pixels.
type Pixel struct {
	R, G, B, A uint8
}

// Sentinel colors. See Pixel.
var (
	White = Pixel{0xFF, 0xFF, 0xFF, 0xFF}
	Black = Pixel{0x00, 0x00, 0x00, 0x00}
)

// Reference defaults. All of them are overridable through Config.
const (
	DefaultWidth  = 1366
	DefaultHeight = 768

	DefaultMaxIterations    = 256
	DefaultDivergeThreshold = 4

	DefaultWorkers       = 4
	DefaultMinStripWidth = 50

	DefaultPrecision = hp.DefaultPrec
)
