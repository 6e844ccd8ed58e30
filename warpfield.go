package warpfield

import (
	"math/rand/v2"
	"time"
)

// Animation is the contract every celestial animation implements.
//
// Draw runs one complete erase → update → draw pass and returns only after
// the full frame has been composited. Erase tears the animation down: it
// clears every pixel the animation still remembers painting and resets all
// state, so the next Draw starts from scratch. Erase is idempotent.
type Animation interface {
	Draw()
	Erase()
}

// Focus is the shared focal transform: where an animation is centered and
// how large it renders. It is owned and mutated by an external placement
// controller; animations only read it, once per tick.
type Focus struct {
	X, Y  int
	Scale float64
}

// Clock supplies monotonic time in milliseconds. The value may wrap;
// animations tolerate wraparound by clamping derived deltas.
type Clock interface {
	NowMillis() uint32
}

// processStart anchors SystemClock readings to process start so the
// millisecond counter stays monotonic regardless of wall-clock changes.
var processStart = time.Now()

// SystemClock implements Clock using the process monotonic clock.
type SystemClock struct{}

// NowMillis returns milliseconds elapsed since process start.
func (SystemClock) NowMillis() uint32 {
	return uint32(time.Since(processStart).Milliseconds())
}

// Rand supplies uniform random integers for spawn timing, placement, and
// color jitter. It need not be cryptographically strong.
type Rand interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) int
}

// SystemRand implements Rand with the shared math/rand/v2 source.
type SystemRand struct{}

// IntN returns a uniform random int in [0, n).
func (SystemRand) IntN(n int) int { return rand.IntN(n) }

// Stage bundles the external services an animation draws against: the
// display surface, time and randomness sources, the shared focal transform,
// and the background color used for erasing. A Stage is passed by value to
// every animation constructor; Focus is shared by pointer so an external
// controller can move and scale animations between ticks.
type Stage struct {
	Surface    Surface
	Clock      Clock
	Rand       Rand
	Focus      *Focus
	Background Color

	// Stats, when non-nil, tallies primitive calls per tick. Diagnostic
	// only; leave nil in production use.
	Stats *FrameStats
}

// pixel draws a single pixel, suppressing the call when (x, y) falls
// outside the surface. Every kernel draw goes through here or erasePixel so
// bounds are checked before each primitive call.
func (st *Stage) pixel(x, y int, c Color) {
	w, h := st.Surface.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	if st.Stats != nil {
		st.Stats.Drawn++
	}
	st.Surface.SetPixel(x, y, c)
}

// erasePixel writes the background color at (x, y), suppressing
// out-of-bounds calls.
func (st *Stage) erasePixel(x, y int) {
	w, h := st.Surface.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	if st.Stats != nil {
		st.Stats.Erased++
	}
	st.Surface.SetPixel(x, y, st.Background)
}

// fillCircle draws a filled circle. The backend clips; bounds checking per
// pixel is the backend's concern for area primitives.
func (st *Stage) fillCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	if st.Stats != nil {
		st.Stats.Fills++
	}
	st.Surface.FillCircle(cx, cy, r, c)
}

// strokeCircle draws a circle outline.
func (st *Stage) strokeCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	if st.Stats != nil {
		st.Stats.Strokes++
	}
	st.Surface.StrokeCircle(cx, cy, r, c)
}

// inBounds reports whether (x, y) lies on the surface.
func (st *Stage) inBounds(x, y int) bool {
	w, h := st.Surface.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// randRange returns a uniform random int in [lo, hi).
func (st *Stage) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + st.Rand.IntN(hi-lo)
}

// deltaSeconds converts the millisecond distance between two clock readings
// into seconds, clamped to (0, 0.1] to absorb clock jitter, long stalls,
// and counter wraparound. Non-positive deltas become one 60 Hz frame.
func deltaSeconds(now, last uint32) float64 {
	dt := float64(now-last) / 1000.0 // uint32 subtraction is wrap-safe
	if dt > 0.1 {
		dt = 0.1
	}
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return dt
}

// elapsedMillis returns the wrap-safe millisecond distance from since to now.
func elapsedMillis(now, since uint32) uint32 {
	return now - since
}

// point is an integer screen coordinate with an explicit validity flag. An
// invalid point means "nothing to erase here"; using a flag instead of a
// sentinel coordinate keeps small and negative-origin displays usable.
type point struct {
	x, y int
	ok   bool
}

// remap linearly maps v from [inLo, inHi] to [outLo, outHi].
func remap(v, inLo, inHi, outLo, outHi int) int {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// clampF clamps v to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
