package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/deepzoom/mandel"
)

// framePeriod is how often a connected viewer gets a fresh raster frame.
// Polling keeps the protocol trivial; the raster converges to a full image
// regardless of how often we look at it.
const framePeriod = 250 * time.Millisecond

// initMsg tells a fresh viewer how big its canvas must be.
type initMsg struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// statusMsg precedes every frame and feeds the HUD.
type statusMsg struct {
	Type    string `json:"type"`
	Workers int    `json:"workers"`
}

// websocketHandler upgrades the /ws endpoint and serves one viewer: binary
// RGBA frames out, text navigation commands in. The handler only needs the
// engine's frame-reading surface plus a liveness callback for the HUD.
func websocketHandler(src mandel.FrameSource, liveWorkers func() int, cmds chan<- mandel.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("viewer connected: %s", r.RemoteAddr)
		go readCommands(r.Context(), c, cmds)

		if err := pushFrames(r.Context(), c, src, liveWorkers); err != nil {
			log.Printf("viewer %s: %v", r.RemoteAddr, err)
		}
	}
}

// readCommands forwards the viewer's text commands into the navigation
// channel. Commands arriving faster than the engine restarts are dropped;
// each restart repaints the whole raster anyway.
func readCommands(ctx context.Context, c *websocket.Conn, cmds chan<- mandel.Command) {
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			continue
		}
		cmd, err := parseCommand(string(data))
		if err != nil {
			log.Printf("viewer: %v", err)
			continue
		}
		select {
		case cmds <- cmd:
		default:
		}
	}
}

func parseCommand(s string) (mandel.Command, error) {
	switch s {
	case "left":
		return mandel.PanLeft, nil
	case "right":
		return mandel.PanRight, nil
	case "up":
		return mandel.PanUp, nil
	case "down":
		return mandel.PanDown, nil
	case "zoom":
		return mandel.ZoomIn, nil
	}
	return 0, fmt.Errorf("unknown command %q", s)
}

// pushFrames sends the init message, then a status message and a raster
// frame every framePeriod until the viewer goes away.
func pushFrames(ctx context.Context, c *websocket.Conn, src mandel.FrameSource, liveWorkers func() int) error {
	w, h := src.Size()
	init, err := json.Marshal(initMsg{Type: "init", Width: w, Height: h})
	if err != nil {
		return err
	}
	if err := c.Write(ctx, websocket.MessageText, init); err != nil {
		return fmt.Errorf("write init: %w", err)
	}

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	var raw, frame []byte
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := json.Marshal(statusMsg{Type: "status", Workers: liveWorkers()})
		if err != nil {
			return err
		}
		if err := c.Write(ctx, websocket.MessageText, status); err != nil {
			return fmt.Errorf("write status: %w", err)
		}

		raw = src.Snapshot(raw)
		frame = displayFrame(raw, w, h, frame)
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

// displayFrame converts an engine frame into canvas order. The raster's row
// 0 is the bottom of the complex plane while ImageData's row 0 is the top of
// the canvas, so rows are reversed; the engine's alpha channel carries paint
// state, not opacity, so it is forced opaque here.
func displayFrame(raw []byte, w, h int, dst []byte) []byte {
	if cap(dst) < len(raw) {
		dst = make([]byte, len(raw))
	}
	dst = dst[:len(raw)]

	stride := w * 4
	for y := 0; y < h; y++ {
		row := raw[(h-1-y)*stride : (h-y)*stride]
		out := dst[y*stride : (y+1)*stride]
		copy(out, row)
		for x := 3; x < stride; x += 4 {
			out[x] = 0xFF
		}
	}
	return dst
}
