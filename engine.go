package mandel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// Config carries the knobs that were compile-time constants in the reference
// renderer. Zero fields fall back to the Default* values; View falls back to
// DefaultViewport at the configured precision.
type Config struct {
	Width, Height int

	MaxIterations    int
	DivergeThreshold float64

	// Precision is the mantissa width for all coordinate arithmetic.
	Precision uint

	// Workers is the fixed pool size. MinStripWidth caps it: workers whose
	// strip would be narrower than the minimum are not dispatched.
	Workers       int
	MinStripWidth int

	// View is the initial viewport.
	View Viewport
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.DivergeThreshold == 0 {
		c.DivergeThreshold = DefaultDivergeThreshold
	}
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.MinStripWidth == 0 {
		c.MinStripWidth = DefaultMinStripWidth
	}
	if c.View == (Viewport{}) {
		c.View = DefaultViewport(c.Precision)
	}
	return c
}

func (c Config) validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("config: raster %dx%d is below the 2x2 minimum", c.Width, c.Height)
	}
	if c.MaxIterations < 3 {
		return fmt.Errorf("config: iteration cap %d leaves no palette bands", c.MaxIterations)
	}
	if c.DivergeThreshold <= 0 {
		return fmt.Errorf("config: divergence threshold %g must be positive", c.DivergeThreshold)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: worker count %d must be at least 1", c.Workers)
	}
	return c.View.validate()
}

// ErrShutDown is returned by operations on an engine after Shutdown.
var ErrShutDown = errors.New("engine is shut down")

var (
	_ FrameSource = (*Engine)(nil)
	_ FrameSource = (*Raster)(nil)
	_ Navigator   = (*Engine)(nil)
)

type slot struct {
	live   bool
	cancel context.CancelFunc
	done   chan struct{}
}

// Engine owns all mutable state of one fractal computation: the viewport,
// the shared raster and the worker slot table. It replaces the reference's
// process globals with an explicit context object constructed at startup and
// torn down by Shutdown.
//
// Restart, Navigate and Shutdown must be called from a single goroutine (the
// display loop); the raster and WaitIdle are safe for concurrent use.
type Engine struct {
	cfg    Config
	raster *Raster

	// view is only touched by the navigation goroutine, and only while no
	// worker is live, so workers always read a settled value.
	view Viewport

	// mu guards the slot table. It is never held together with the raster
	// lock, which keeps pool management and pixel writes deadlock-free.
	mu       sync.Mutex
	slots    []slot
	live     int
	passDone chan struct{}
	closed   bool
}

// NewEngine builds an engine from cfg without starting any computation; call
// Restart to paint the first pass.
func NewEngine(cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if limit := cfg.Width / cfg.MinStripWidth; workers > limit && limit >= 1 {
		log.Printf("capping workers from %d to %d: strips must be at least %d columns wide",
			workers, limit, cfg.MinStripWidth)
		workers = limit
	}
	cfg.Workers = workers

	done := make(chan struct{})
	close(done) // no pass in flight yet

	return &Engine{
		cfg:      cfg,
		raster:   NewRaster(cfg.Width, cfg.Height),
		view:     cfg.View,
		slots:    make([]slot, workers),
		passDone: done,
	}, nil
}

// Raster returns the shared pixel buffer. See Raster for the read contract.
func (e *Engine) Raster() *Raster {
	return e.raster
}

// Size returns the raster dimensions.
func (e *Engine) Size() (w, h int) {
	return e.raster.Size()
}

// Snapshot copies the current raster into dst as RGBA bytes.
func (e *Engine) Snapshot(dst []byte) []byte {
	return e.raster.Snapshot(dst)
}

// View returns the current viewport. Only meaningful from the navigation
// goroutine, like the operations that change it.
func (e *Engine) View() Viewport {
	return e.view
}

// Config returns the effective configuration, defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// LiveWorkers returns the number of workers still painting the current pass.
func (e *Engine) LiveWorkers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live
}

// Restart aborts any in-flight pass and starts painting v from scratch:
// drain all workers, commit the viewport, reset the raster to the White
// sentinel, then dispatch one worker per vertical strip.
func (e *Engine) Restart(v Viewport) error {
	if err := v.validate(); err != nil {
		return err
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrShutDown
	}
	e.mu.Unlock()

	e.stopWorkers()
	e.view = v
	e.raster.Fill(White)

	w, h := e.raster.Size()
	regions := splitStrips(w, h, len(e.slots))
	log.Printf("restarting %d workers on viewport %s", len(regions), v)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.passDone = make(chan struct{})
	for i, reg := range regions {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		e.slots[i] = slot{live: true, cancel: cancel, done: done}
		e.live++
		go e.worker(ctx, i, reg, v, done)
	}
	return nil
}

// Navigate applies one navigation command to the current viewport and
// restarts computation, synchronously with respect to dispatch.
func (e *Engine) Navigate(cmd Command) error {
	next := e.view.Apply(cmd)
	if err := e.Restart(next); err != nil {
		return fmt.Errorf("navigate %s: %w", cmd, err)
	}
	return nil
}

// WaitIdle blocks until the pass in flight has painted every pixel it is
// going to, or ctx is done.
func (e *Engine) WaitIdle(ctx context.Context) error {
	e.mu.Lock()
	done := e.passDone
	e.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown cancels all live workers and waits for them to exit. It is
// idempotent, and every later Restart fails with ErrShutDown.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.stopWorkers()
	log.Printf("engine shut down")
}

// stopWorkers requests cancellation of every live slot under the slot lock,
// then joins the workers outside it. On return no worker is live and the
// raster is quiescent.
func (e *Engine) stopWorkers() {
	e.mu.Lock()
	var joins []chan struct{}
	for i := range e.slots {
		if e.slots[i].live {
			e.slots[i].cancel()
			joins = append(joins, e.slots[i].done)
		}
	}
	e.mu.Unlock()

	for _, done := range joins {
		<-done
	}
}

// release frees a worker slot and, when it was the last live one, marks the
// pass complete.
func (e *Engine) release(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.slots[i].live {
		return
	}
	e.slots[i].live = false
	e.live--
	if e.live == 0 {
		close(e.passDone)
	}
}
