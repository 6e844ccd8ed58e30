package warpfield

import "math"

// Star animates a flare star: a glowing core with four axis-aligned flares.
// The star itself is static — every tick redraws the same pixels at the
// current focus — but a moved or rescaled focus erases the old footprint
// first, the same movement check the black hole uses.
type Star struct {
	stage Stage

	initialized bool
	prev        point
	prevRadius  int
}

// NewStar creates a Star drawing against the given stage.
func NewStar(stage Stage) *Star {
	return &Star{stage: stage}
}

// Draw runs one animation tick.
func (s *Star) Draw() {
	cx, cy := s.stage.Focus.X, s.stage.Focus.Y
	radius := int(8 * s.stage.Focus.Scale)

	if s.initialized && (cx != s.prev.x || cy != s.prev.y || radius != s.prevRadius) {
		s.eraseAt(s.prev.x, s.prev.y, s.prevRadius)
	}

	// Core glow: rings brightening toward the center.
	for r := radius; r > 0; r-- {
		intensity := float64(remap(r, 0, radius, 255, 50)) / 255
		s.stage.strokeCircle(cx, cy, r, RGB(int(255*intensity), int(255*intensity), int(240*intensity)))
	}
	s.stage.fillCircle(cx, cy, radius/2, White)

	// Four flares with a linear gradient.
	flareLength := radius * 3 / 2
	for i := 0; i < 4; i++ {
		angle := float64(i) * math.Pi / 2
		sin, cos := math.Sincos(angle)
		for j := 0; j < flareLength; j++ {
			x := cx + int(float64(j)*cos)
			y := cy + int(float64(j)*sin)
			brightness := 1 - float64(j)/float64(flareLength)
			s.stage.pixel(x, y, RGB(int(255*brightness), int(255*brightness), int(240*brightness)))
		}
	}

	s.prev = point{x: cx, y: cy, ok: true}
	s.prevRadius = radius
	s.initialized = true
}

// eraseAt clears a disk large enough to cover the core and flares.
func (s *Star) eraseAt(cx, cy, radius int) {
	eraseRadius := int(float64(radius) * 1.6)
	s.stage.fillCircle(cx, cy, eraseRadius, s.stage.Background)
}

// Erase clears the star's last drawn footprint and resets. Idempotent.
func (s *Star) Erase() {
	if !s.initialized {
		return
	}
	s.eraseAt(s.prev.x, s.prev.y, s.prevRadius)
	s.prev = point{}
	s.initialized = false
}
