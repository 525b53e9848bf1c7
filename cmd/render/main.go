// main.go is a batch renderer: it computes one complete pass of the engine
// and saves it as a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/deepzoom/mandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	out := flag.String("out", "mandel.png", "output file")
	width := flag.Int("width", mandel.DefaultWidth, "image width in pixels")
	height := flag.Int("height", mandel.DefaultHeight, "image height in pixels")
	workers := flag.Int("workers", mandel.DefaultWorkers, "worker pool size")
	iters := flag.Int("iters", mandel.DefaultMaxIterations, "iteration cap")
	view := flag.String("view", "full", "view to render: full, seahorse, elephant, spiral, triple, dragon, minibrot")
	zoom := flag.Int("zoom", 0, "number of 2x zoom-in steps applied before rendering")
	flag.Parse()

	v, err := mandel.ViewByName(*view, mandel.DefaultPrecision)
	if err != nil {
		return err
	}
	for i := 0; i < *zoom; i++ {
		v = v.ZoomIn()
	}

	eng, err := mandel.NewEngine(mandel.Config{
		Width:         *width,
		Height:        *height,
		Workers:       *workers,
		MaxIterations: *iters,
	})
	if err != nil {
		return fmt.Errorf("new engine: %w", err)
	}
	defer eng.Shutdown()

	log.Printf("rendering %dx%d, %d iterations, view %s", *width, *height, *iters, v)
	if err := eng.Restart(v); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	if err := eng.WaitIdle(context.Background()); err != nil {
		return err
	}

	img := toImage(eng)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	log.Printf("rendered image saved to %q", *out)
	return nil
}

// toImage copies the raster into an image.RGBA. Raster row 0 is the bottom
// of the complex plane, image row 0 is the top, so rows are flipped, and the
// engine's state-carrying alpha channel is forced opaque.
func toImage(eng *mandel.Engine) *image.RGBA {
	w, h := eng.Size()
	raw := eng.Snapshot(nil)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	stride := w * 4
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+stride]
		copy(row, raw[(h-1-y)*stride:(h-y)*stride])
		for x := 3; x < stride; x += 4 {
			row[x] = 0xFF
		}
	}
	return img
}
