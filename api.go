package mandel

// FrameSource is the read side of the engine as seen by a display
// collaborator: raster dimensions plus a locked snapshot of the pixels.
type FrameSource interface {
	Size() (w, h int)
	Snapshot(dst []byte) []byte
}

// Navigator consumes the discrete navigation command stream. Calls must come
// from a single goroutine; each command restarts computation synchronously
// before returning.
type Navigator interface {
	Navigate(cmd Command) error
}
