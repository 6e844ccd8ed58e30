package warpfield

import (
	"fmt"
	"os"
)

// FrameStats tallies the primitive calls an animation issues. Attach one to
// Stage.Stats and call Reset at the start of every tick to get per-frame
// counts; a growing gap between Drawn and Erased across steady-state frames
// points at an erase leak.
type FrameStats struct {
	Drawn   int // single-pixel draws
	Erased  int // single-pixel background writes
	Fills   int // filled-circle calls
	Strokes int // circle-outline calls
}

// Reset zeroes all counters.
func (f *FrameStats) Reset() {
	*f = FrameStats{}
}

// Log prints the counters to stderr, prefixed with a label.
func (f *FrameStats) Log(label string) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[warpfield] %s: drawn %d | erased %d | fills %d | strokes %d\n",
		label, f.Drawn, f.Erased, f.Fills, f.Strokes)
}
