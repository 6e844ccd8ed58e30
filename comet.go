package warpfield

import "math"

const (
	maxCometTail = 500

	// cometTailLifetime is how long a tail particle lives, in milliseconds.
	cometTailLifetime = 2000
)

// cometParticle is one shed tail particle. A zero brightness marks the slot
// free for respawning.
type cometParticle struct {
	x, y       float64
	vx, vy     float64
	brightness int
	spawned    uint32
}

// Comet animates a glowing nucleus crossing the screen from a random edge
// toward a jittered point near the focal center, shedding a fixed pool of
// fading tail particles behind it. When the nucleus leaves the screen the
// whole comet erases itself and the next Draw starts a fresh crossing.
type Comet struct {
	stage Stage

	initialized bool
	x, y        float64
	vx, vy      float64
	radius      int
	prev        point
	tail        [maxCometTail]cometParticle
	lastShed    uint32
}

// NewComet creates a Comet drawing against the given stage.
func NewComet(stage Stage) *Comet {
	return &Comet{stage: stage}
}

// Draw runs one animation tick.
func (c *Comet) Draw() {
	now := c.stage.Clock.NowMillis()
	if !c.initialized {
		c.initialize(now)
	}

	c.x += c.vx
	c.y += c.vy

	x := int(math.Round(c.x))
	y := int(math.Round(c.y))

	// Erase the previous nucleus before drawing the new one.
	if c.prev.ok && c.stage.inBounds(c.prev.x, c.prev.y) {
		c.stage.fillCircle(c.prev.x, c.prev.y, c.radius+1, c.stage.Background)
	}

	if c.stage.inBounds(x, y) {
		c.drawNucleus(x, y)
		c.prev = point{x: x, y: y, ok: true}
	}

	c.shedParticle(now)
	c.updateTail(now)

	// Fully off-screen: clean up and reinitialize on the next tick.
	w, h := c.stage.Surface.Size()
	if x < -c.radius || x > w+c.radius || y < -c.radius || y > h+c.radius {
		c.Erase()
	}
}

// initialize places the nucleus just inside a random screen edge, aimed at
// the focal center with positional and speed jitter.
func (c *Comet) initialize(now uint32) {
	w, h := c.stage.Surface.Size()
	f := c.stage.Focus

	switch c.stage.Rand.IntN(4) {
	case 0: // top
		c.x, c.y = float64(c.stage.Rand.IntN(w)), 0
	case 1: // right
		c.x, c.y = float64(w-1), float64(c.stage.Rand.IntN(h))
	case 2: // bottom
		c.x, c.y = float64(c.stage.Rand.IntN(w)), float64(h-1)
	case 3: // left
		c.x, c.y = 0, float64(c.stage.Rand.IntN(h))
	}

	targetX := float64(f.X + c.stage.randRange(-20, 21))
	targetY := float64(f.Y + c.stage.randRange(-20, 21))
	dx := targetX - c.x
	dy := targetY - c.y
	dist := math.Max(math.Hypot(dx, dy), 0.1)
	speed := (0.3 + float64(c.stage.Rand.IntN(100))/500) * f.Scale
	c.vx = dx / dist * speed
	c.vy = dy / dist * speed

	c.radius = int(2 * f.Scale)

	for i := range c.tail {
		c.tail[i] = cometParticle{x: c.x, y: c.y}
	}

	c.prev = point{x: int(math.Round(c.x)), y: int(math.Round(c.y)), ok: true}
	c.lastShed = now
	c.initialized = true
}

// drawNucleus paints the glowing head: concentric rings brightening
// outward, with a solid white core at half radius.
func (c *Comet) drawNucleus(x, y int) {
	for r := c.radius; r > 0; r-- {
		brightness := remap(r, 0, c.radius, 100, 255)
		c.stage.strokeCircle(x, y, r, RGB(brightness, brightness, brightness*8/10))
	}
	c.stage.fillCircle(x, y, c.radius/2, White)
}

// shedParticle spawns at most one tail particle per tick, rate-limited to
// one every 5 ms, launched opposite the nucleus velocity with angular and
// speed jitter.
func (c *Comet) shedParticle(now uint32) {
	if elapsedMillis(now, c.lastShed) <= 5 {
		return
	}
	for i := range c.tail {
		p := &c.tail[i]
		if p.brightness != 0 {
			continue
		}
		p.x = c.x + float64(c.stage.randRange(-1, 2))
		p.y = c.y + float64(c.stage.randRange(-1, 2))
		angle := math.Atan2(-c.vy, -c.vx)
		deviation := float64(c.stage.randRange(-30, 30)) * math.Pi / 180
		speedFactor := 0.05 + float64(c.stage.Rand.IntN(100))/500
		p.vx = math.Cos(angle+deviation) * speedFactor * c.stage.Focus.Scale
		p.vy = math.Sin(angle+deviation) * speedFactor * c.stage.Focus.Scale
		p.brightness = 150 + c.stage.Rand.IntN(106)
		p.spawned = now
		c.lastShed = now
		return
	}
}

// updateTail advances, fades, and redraws every live tail particle. The
// previous pixel is erased only when the particle actually moved a pixel,
// keeping the write load low for slow drifting particles.
func (c *Comet) updateTail(now uint32) {
	for i := range c.tail {
		p := &c.tail[i]
		if p.brightness == 0 {
			continue
		}

		prevX := int(math.Round(p.x))
		prevY := int(math.Round(p.y))

		p.x += p.vx
		p.y += p.vy
		p.vx *= 1.001 // drift keeps accelerating along its spawn direction
		p.vy *= 1.001

		x := int(math.Round(p.x))
		y := int(math.Round(p.y))

		if (prevX != x || prevY != y) && c.stage.inBounds(prevX, prevY) {
			c.stage.erasePixel(prevX, prevY)
		}

		age := elapsedMillis(now, p.spawned)
		if age > cometTailLifetime {
			p.brightness = 0
			continue
		}
		fade := 1 - float64(age)/cometTailLifetime
		v := float64(p.brightness) * fade
		if c.stage.inBounds(x, y) {
			c.stage.pixel(x, y, RGB(int(v*0.5), int(v*0.8), int(v)))
		}
	}
}

// Erase clears the nucleus and every live tail particle, then resets so the
// next Draw reinitializes. Idempotent.
func (c *Comet) Erase() {
	if !c.initialized {
		return
	}
	if c.prev.ok && c.stage.inBounds(c.prev.x, c.prev.y) {
		c.stage.fillCircle(c.prev.x, c.prev.y, c.radius+1, c.stage.Background)
	}
	for i := range c.tail {
		p := &c.tail[i]
		if p.brightness == 0 {
			continue
		}
		x := int(math.Round(p.x))
		y := int(math.Round(p.y))
		if c.stage.inBounds(x, y) {
			c.stage.erasePixel(x, y)
		}
		p.brightness = 0
	}
	c.prev = point{}
	c.initialized = false
}
