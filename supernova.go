package warpfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	maxSupernovaParticles = 60

	// Phase boundaries in milliseconds since ignition.
	supernovaExpandAt = 1000
	supernovaFadeAt   = 3000
	supernovaWaveEnd  = 5000
)

// supernovaPhase tracks the explosion's progress.
type supernovaPhase int

const (
	phaseCharging  supernovaPhase = iota // star brightens and pulses
	phaseExpanding                       // debris flies, shockwave grows
	phaseFading                          // debris and shockwave die out
)

// supernovaParticle is one piece of explosion debris.
type supernovaParticle struct {
	x, y       float64
	vx, vy     float64
	brightness int
	color      Color
	prev       point
	active     bool
}

// Supernova animates an exploding star in three phases: a charging core
// that brightens over one second, a debris burst with an expanding
// shockwave ring, and a fade-out. Phase transitions are time-driven; the
// brightness ramps run on tweens.
type Supernova struct {
	stage Stage

	initialized bool
	start       uint32
	lastUpdate  uint32
	phase       supernovaPhase
	radius      int
	prev        point

	debris [maxSupernovaParticles]supernovaParticle

	charge    *gween.Tween // 0→1 over the charge phase
	waveFade  *gween.Tween // 1→0 over the shockwave fade
	chargeVal float32
	fadeVal   float32
}

// NewSupernova creates a Supernova drawing against the given stage.
func NewSupernova(stage Stage) *Supernova {
	return &Supernova{stage: stage}
}

// Draw runs one animation tick.
func (n *Supernova) Draw() {
	cx, cy := n.stage.Focus.X, n.stage.Focus.Y
	scale := n.stage.Focus.Scale
	now := n.stage.Clock.NowMillis()

	if !n.initialized {
		n.initialize(cx, cy, scale, now)
	}

	dt := deltaSeconds(now, n.lastUpdate)
	n.lastUpdate = now
	elapsed := elapsedMillis(now, n.start)

	// Phase transitions.
	if n.phase == phaseCharging && elapsed > supernovaExpandAt {
		n.phase = phaseExpanding
		n.igniteDebris(scale)
	} else if n.phase == phaseExpanding && elapsed > supernovaFadeAt {
		n.phase = phaseFading
		n.waveFade = gween.New(1, 0, 2.0, ease.Linear)
		n.fadeVal = 1
	}

	switch n.phase {
	case phaseCharging:
		n.drawChargingStar(cx, cy, now, dt)
	default:
		// The star itself is gone once the explosion starts.
		n.stage.fillCircle(cx, cy, n.radius, n.stage.Background)
		n.drawShockwave(cx, cy, scale, elapsed, dt)
		n.updateDebris()
	}

	n.prev = point{x: cx, y: cy, ok: true}
}

// initialize seeds the debris pool with preassigned colors and draws the
// pre-explosion star.
func (n *Supernova) initialize(cx, cy int, scale float64, now uint32) {
	n.prev = point{x: cx, y: cy, ok: true}
	n.radius = int(5 * scale)
	n.start = now
	n.lastUpdate = now
	n.phase = phaseCharging
	n.charge = gween.New(0, 1, float32(supernovaExpandAt)/1000, ease.Linear)
	n.chargeVal = 0
	n.waveFade = nil
	n.fadeVal = 1

	palette := [4]Color{
		RGB(255, 255, 200), // white-yellow
		RGB(255, 150, 50),  // orange
		RGB(255, 50, 50),   // red
		RGB(200, 200, 255), // blue-white
	}
	for i := range n.debris {
		n.debris[i] = supernovaParticle{
			x:     float64(cx),
			y:     float64(cy),
			color: palette[n.stage.Rand.IntN(4)],
			prev:  point{x: cx, y: cy, ok: true},
		}
	}

	n.stage.fillCircle(cx, cy, n.radius, RGB(255, 200, 100))
	n.initialized = true
}

// igniteDebris launches every debris particle radially at a random angle
// and speed.
func (n *Supernova) igniteDebris(scale float64) {
	for i := range n.debris {
		d := &n.debris[i]
		d.active = true
		d.brightness = 255
		angle := float64(n.stage.Rand.IntN(360)) * math.Pi / 180
		speed := float64(n.stage.randRange(10, 20)) / 10 * scale
		d.vx = math.Cos(angle) * speed
		d.vy = math.Sin(angle) * speed
	}
}

// drawChargingStar redraws the pre-explosion star with the tweened
// brightness ramp modulated by a fast pulse.
func (n *Supernova) drawChargingStar(cx, cy int, now uint32, dt float64) {
	v, _ := n.charge.Update(float32(dt))
	n.chargeVal = v

	pulse := 0.8 + 0.2*math.Sin(float64(now)/200)
	brightness := float64(n.chargeVal) * pulse

	n.stage.fillCircle(cx, cy, n.radius, n.stage.Background)
	n.stage.fillCircle(cx, cy, n.radius, RGB(
		int(255*brightness), int(200*brightness), int(100*brightness)))
}

// drawShockwave draws the expanding ring band while it lasts, fading out
// on the fade tween once the explosion enters its final phase.
func (n *Supernova) drawShockwave(cx, cy int, scale float64, elapsed uint32, dt float64) {
	if elapsed >= supernovaWaveEnd {
		return
	}
	waveRadius := int(5 + float64(elapsed-supernovaExpandAt)/100*scale)
	waveWidth := int(3 * scale)
	if waveWidth < 1 {
		waveWidth = 1
	}

	brightness := 1.0
	if n.phase == phaseFading && n.waveFade != nil {
		v, _ := n.waveFade.Update(float32(dt))
		n.fadeVal = v
		brightness = math.Max(0, float64(v))
	}

	for w := 0; w < waveWidth; w++ {
		ring := brightness * (1 - float64(w)/float64(waveWidth))
		n.stage.strokeCircle(cx, cy, waveRadius+w, RGB(
			int(255*ring), int(200*ring), int(150*ring)))
	}
}

// updateDebris erases, moves, fades, and redraws every active debris
// particle. Particles leaving the screen or fading below threshold
// deactivate.
func (n *Supernova) updateDebris() {
	for i := range n.debris {
		d := &n.debris[i]
		if !d.active {
			continue
		}

		if d.prev.ok {
			n.stage.erasePixel(d.prev.x, d.prev.y)
		}

		d.x += d.vx
		d.y += d.vy

		if n.phase == phaseFading {
			d.brightness = max(0, d.brightness-2)
			if d.brightness <= 10 {
				d.active = false
				continue
			}
		}

		factor := float64(d.brightness) / 255
		c := d.color.Scale(factor)

		x := int(math.Round(d.x))
		y := int(math.Round(d.y))
		if !n.stage.inBounds(x, y) {
			d.active = false
			continue
		}
		n.stage.pixel(x, y, c)
		d.prev = point{x: x, y: y, ok: true}
	}
}

// Erase clears the core, every active debris particle, and the full
// shockwave reach, then resets. Idempotent.
func (n *Supernova) Erase() {
	if !n.initialized {
		return
	}
	if n.prev.ok && n.stage.inBounds(n.prev.x, n.prev.y) {
		clearRadius := max(n.radius+5, 30)
		n.stage.fillCircle(n.prev.x, n.prev.y, clearRadius, n.stage.Background)
	}
	for i := range n.debris {
		d := &n.debris[i]
		if !d.active {
			continue
		}
		x := int(math.Round(d.x))
		y := int(math.Round(d.y))
		if n.stage.inBounds(x, y) {
			// Small fill in case of visual bleed around the pixel.
			n.stage.fillCircle(x, y, 2, n.stage.Background)
		}
		d.active = false
	}
	maxWave := int(40 * n.stage.Focus.Scale)
	n.stage.fillCircle(n.stage.Focus.X, n.stage.Focus.Y, maxWave, n.stage.Background)
	n.initialized = false
}
