// server.go runs the interactive Mandelbrot viewer: the engine paints into
// its raster while an HTTP server streams frames to browser canvases over
// websocket and feeds their arrow-key commands back into the engine.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/deepzoom/mandel"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	width := flag.Int("width", mandel.DefaultWidth, "raster width in pixels")
	height := flag.Int("height", mandel.DefaultHeight, "raster height in pixels")
	workers := flag.Int("workers", mandel.DefaultWorkers, "worker pool size")
	iters := flag.Int("iters", mandel.DefaultMaxIterations, "iteration cap")
	view := flag.String("view", "full", "starting view: full, seahorse, elephant, spiral, triple, dragon, minibrot")
	flag.Parse()

	start, err := mandel.ViewByName(*view, mandel.DefaultPrecision)
	if err != nil {
		return err
	}

	eng, err := mandel.NewEngine(mandel.Config{
		Width:         *width,
		Height:        *height,
		Workers:       *workers,
		MaxIterations: *iters,
		View:          start,
	})
	if err != nil {
		return fmt.Errorf("new engine: %w", err)
	}
	defer eng.Shutdown()

	if err := eng.Restart(eng.View()); err != nil {
		return fmt.Errorf("initial restart: %w", err)
	}

	// All navigation runs through one goroutine, so the viewport is only
	// ever mutated by a single pan/zoom handler.
	cmds := make(chan mandel.Command, 8)
	go navigationLoop(eng, cmds)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(eng, eng.LiveWorkers, cmds))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("viewer listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

// navigationLoop applies viewer commands one at a time, each restarting
// computation before the next is taken.
func navigationLoop(nav mandel.Navigator, cmds <-chan mandel.Command) {
	for cmd := range cmds {
		log.Printf("navigate: %s", cmd)
		if err := nav.Navigate(cmd); err != nil {
			log.Printf("navigate %s: %v", cmd, err)
		}
	}
}
