package warpfield

import "math"

const (
	lensPointCount  = 60
	swirlPointCount = 4
)

// BlackHole animates an event horizon with an orbiting accretion disk,
// infalling stars, a photon ring, swirling inner glow, and a gravitational
// lensing ring. All pools and trackers are fixed-capacity and allocated at
// construction; every Draw is one complete erase → update → draw pass.
//
// The focal center and scale come from the Stage's Focus, re-read every
// tick; the event-horizon radius and disk radii derive from the scale
// before any particle math uses them.
type BlackHole struct {
	stage Stage

	// TrailLifetime is how long a deactivated particle's trail lingers
	// before the slot reinitializes, in milliseconds. Applied at particle
	// (re)initialization.
	TrailLifetime uint32

	initialized bool
	lastUpdate  uint32

	// Radii derived from the focus scale, recomputed every tick.
	radius      float64 // event horizon
	innerRadius float64
	outerRadius float64

	// Previous-frame focal parameters, for the moved/resized erase check.
	prevX, prevY int
	prevRadius   float64

	disk  [maxAccretionParticles]accretionParticle
	stars [maxFallingStars]fallingStar

	// Erase trackers: the only input to the next frame's erase pass.
	starTrails [maxFallingStars]trail
	lens       [lensPointCount]point
	swirl      [swirlPointCount]point
}

// NewBlackHole creates a BlackHole drawing against the given stage. The
// first Draw seeds the particle pools from the focus position at that
// moment.
func NewBlackHole(stage Stage) *BlackHole {
	b := &BlackHole{stage: stage, TrailLifetime: defaultTrailLifetime}
	for i := range b.disk {
		b.disk[i].trail = newTrail(accretionTrailCap)
	}
	for i := range b.starTrails {
		b.starTrails[i] = newTrail(starTrailCap)
	}
	return b
}

// Draw runs one animation tick: erase last frame's remembered footprint,
// advance the physics, spawn infalling stars, then composite all layers
// back to front. It returns only after the full frame is drawn.
func (b *BlackHole) Draw() {
	cx, cy := b.stage.Focus.X, b.stage.Focus.Y
	now := b.stage.Clock.NowMillis()

	// Derived radii come from the current scale before anything else reads
	// them.
	b.radius = 14 * b.stage.Focus.Scale
	b.innerRadius = b.radius * 1.2
	b.outerRadius = b.radius * 2.0

	if !b.initialized {
		b.initialize(cx, cy, now)
	}

	dt := deltaSeconds(now, b.lastUpdate)
	b.lastUpdate = now

	b.eraseFrame(cx, cy)

	b.updateDisk(dt, now)
	b.updateStars(dt, now, cx, cy)
	b.spawnStar(now, cx, cy)

	// Fixed back-to-front layering; reordering breaks the depth illusion.
	b.drawDiskBack(cx, cy)
	b.drawHorizon(cx, cy)
	b.drawSwirl(now, cx, cy)
	b.drawPhotonRing(cx, cy)
	b.drawLensing(cx, cy)
	b.drawStars(cx, cy)
	b.drawDiskFront(cx, cy)

	b.prevX, b.prevY = cx, cy
	b.prevRadius = b.radius
}

// initialize seeds every pool and tracker for a fresh run.
func (b *BlackHole) initialize(cx, cy int, now uint32) {
	for i := range b.disk {
		b.initParticle(&b.disk[i])
	}
	for i := range b.stars {
		b.stars[i] = fallingStar{}
	}
	for i := range b.starTrails {
		b.starTrails[i].clear()
	}
	for i := range b.lens {
		b.lens[i] = point{}
	}
	for i := range b.swirl {
		b.swirl[i] = point{}
	}

	b.prevX, b.prevY = cx, cy
	b.prevRadius = b.radius
	b.lastUpdate = now
	b.initialized = true
}

// eraseFrame clears everything the previous tick remembers painting. The
// horizon footprint and lens points are only erased when the focal object
// moved or resized; everything else is erased unconditionally, and the
// corresponding trackers reset so no coordinate is ever erased twice.
func (b *BlackHole) eraseFrame(cx, cy int) {
	moved := cx != b.prevX || cy != b.prevY ||
		math.Abs(b.radius-b.prevRadius) > 0.5

	if moved && b.prevRadius > 0 {
		// Slightly oversized to catch the photon rings and edge artifacts.
		b.stage.fillCircle(b.prevX, b.prevY, int(math.Round(b.prevRadius+4)), b.stage.Background)
		for i := range b.lens {
			if b.lens[i].ok {
				b.stage.erasePixel(b.lens[i].x, b.lens[i].y)
				b.lens[i] = point{}
			}
		}
	}

	// Disk particles: previous pixel and the full trail. The trail itself
	// persists (it is redrawn after the update), only the pixels clear.
	for i := range b.disk {
		p := &b.disk[i]
		if p.prev.ok {
			b.stage.erasePixel(p.prev.x, p.prev.y)
		}
		for t := 0; t < p.trail.len(); t++ {
			tp := p.trail.at(t)
			b.stage.erasePixel(tp.x, tp.y)
		}
	}

	// Falling stars: the full tracked list, then reset — the draw pass
	// rebuilds it from scratch.
	for i := range b.starTrails {
		tr := &b.starTrails[i]
		for t := 0; t < tr.len(); t++ {
			tp := tr.at(t)
			b.stage.erasePixel(tp.x, tp.y)
		}
		tr.clear()
	}

	for i := range b.swirl {
		if b.swirl[i].ok {
			b.stage.erasePixel(b.swirl[i].x, b.swirl[i].y)
			b.swirl[i] = point{}
		}
	}
}

// drawHorizon fills the event-horizon disk with the background color,
// occluding whatever the back half of the disk drew underneath.
func (b *BlackHole) drawHorizon(cx, cy int) {
	if b.radius >= 0.5 {
		b.stage.fillCircle(cx, cy, int(math.Round(b.radius)), b.stage.Background)
	}
}

// drawSwirl draws four faint points slowly rotating inside the horizon,
// staggered a quarter turn apart and dimming with index.
func (b *BlackHole) drawSwirl(now uint32, cx, cy int) {
	for i := 0; i < swirlPointCount; i++ {
		angle := math.Mod(float64(now)/90+float64(i)*(math.Pi/2), 2*math.Pi)
		distanceFactor := math.Min(0.15+0.6*float64(i)/4, 0.9)
		x := int(math.Round(float64(cx) + math.Cos(angle)*b.radius*distanceFactor))
		y := int(math.Round(float64(cy) + math.Sin(angle)*b.radius*distanceFactor))

		if b.stage.inBounds(x, y) {
			brightness := max(10, 50-12*i)
			b.stage.pixel(x, y, gray(brightness))
			b.swirl[i] = point{x: x, y: y, ok: true}
		} else {
			b.swirl[i] = point{}
		}
	}
}

// drawPhotonRing outlines the horizon with the bright primary ring, a white
// arc highlight on the near side, and two fainter offset rings drawn only
// when they fit on screen.
func (b *BlackHole) drawPhotonRing(cx, cy int) {
	if b.radius < 0.5 {
		return
	}
	w, h := b.stage.Surface.Size()
	rbh := int(math.Round(b.radius))

	b.stage.strokeCircle(cx, cy, rbh, RGB(255, 230, 180))

	// Near-side highlight: brighter from Doppler beaming and viewing angle.
	for angle := math.Pi * 0.75; angle < math.Pi*1.25; angle += 0.04 {
		x := int(math.Round(float64(cx) + float64(rbh)*math.Cos(angle)))
		y := int(math.Round(float64(cy) + float64(rbh)*math.Sin(angle)))
		b.stage.pixel(x, y, White)
	}

	if rbh+1 < min(w, h)/2 {
		b.stage.strokeCircle(cx, cy, rbh+1, RGB(200, 180, 150))
	}
	if rbh+2 < min(w, h)/2 {
		b.stage.strokeCircle(cx, cy, rbh+2, RGB(150, 140, 120))
	}
}

// drawLensing samples 60 points around a distorted ring at 1.8× the horizon
// radius, tinted by simulated Doppler shift: blue toward the viewer at the
// bottom, red away at the top. Each drawn sample is recorded in the lens
// tracker; samples falling off-screen are marked invalid so the erase pass
// skips them.
func (b *BlackHole) drawLensing(cx, cy int) {
	lensRadius := b.radius * 1.8
	for i := 0; i < lensPointCount; i++ {
		angle := float64(i) * 6 * math.Pi / 180
		sin, cos := math.Sincos(angle)

		// Stronger distortion behind the focal object.
		distortion := 0.9 + 0.5*(1-sin)/2
		adjusted := lensRadius * distortion
		x := int(math.Round(float64(cx) + cos*adjusted))
		y := int(math.Round(float64(cy) + sin*adjusted))

		if !b.stage.inBounds(x, y) {
			b.lens[i] = point{}
			continue
		}

		doppler := (1 + sin) / 2
		var c Color
		switch {
		case doppler > 0.75:
			c = RGB(180, 200, 255) // blue shift
		case doppler < 0.25:
			c = RGB(255, 180, 150) // red shift
		default:
			c = RGB(230, 200+int(doppler*30), 200+int(doppler*50))
		}
		b.stage.pixel(x, y, c)
		b.lens[i] = point{x: x, y: y, ok: true}
	}
}

// Erase tears the animation down: one oversized background fill over the
// last known footprint, then every tracker and pool resets so the next Draw
// starts from scratch. Calling Erase on an already-erased animation is a
// no-op.
func (b *BlackHole) Erase() {
	if !b.initialized {
		return
	}

	eraseRadius := 60.0
	if b.prevRadius > 0 {
		eraseRadius = math.Max(b.prevRadius*2.5, b.outerRadius*1.1) + 5
	}
	b.stage.fillCircle(b.prevX, b.prevY, int(math.Round(eraseRadius)), b.stage.Background)

	// Stray pixels outside the footprint circle: fading star trails and
	// off-ring disk trails.
	for i := range b.starTrails {
		tr := &b.starTrails[i]
		for t := 0; t < tr.len(); t++ {
			tp := tr.at(t)
			b.stage.erasePixel(tp.x, tp.y)
		}
		tr.clear()
	}
	for i := range b.disk {
		p := &b.disk[i]
		if p.prev.ok {
			b.stage.erasePixel(p.prev.x, p.prev.y)
		}
		for t := 0; t < p.trail.len(); t++ {
			tp := p.trail.at(t)
			b.stage.erasePixel(tp.x, tp.y)
		}
		p.trail.clear()
		p.prev = point{}
	}
	for i := range b.stars {
		b.stars[i] = fallingStar{}
	}
	for i := range b.lens {
		b.lens[i] = point{}
	}
	for i := range b.swirl {
		b.swirl[i] = point{}
	}

	b.prevRadius = 0
	b.initialized = false
}
