package warpfield

import "math"

const (
	maxAccretionParticles = 450
	accretionTrailCap     = 8

	// defaultTrailLifetime is how long a deactivated particle's trail
	// lingers before the slot reinitializes, in milliseconds.
	defaultTrailLifetime = 600
)

// accretionParticle is one orbital particle of the disk. Slots live in a
// fixed array owned by BlackHole and are reused, never freed: a particle is
// either active (orbiting), fading (inactive, trail decaying, position
// frozen for erasure), or eligible for immediate reinitialization.
type accretionParticle struct {
	angle    float64 // radians, kept in [0, 2π)
	distance float64 // pixels from the focal center
	speed    float64 // base angular rate

	relFactor float64 // orbital velocity fraction, feeds shading
	doppler   float64 // Doppler beaming factor from the init angle
	color     Color   // base color, fixed until reinitialization

	active     bool
	hasTrail   bool
	trailStart uint32
	trailLife  uint32

	prev    point                    // last drawn position, erase input
	trail   trail                    // recent positions, newest first
	palette [accretionTrailCap]Color // fade colors by trail index
}

// initParticle seeds or reseeds one disk slot from the current radii.
// Distance uses a squared uniform draw, biasing the population toward the
// inner edge the way a thin disk's surface density falls off. Color comes
// from a blackbody-like temperature ramp modulated by Doppler beaming; both
// are computed once here and reused every frame until the slot recycles.
func (b *BlackHole) initParticle(p *accretionParticle) {
	inner := math.Max(1, b.radius*1.2)
	outer := math.Max(inner+1, b.radius*2.5)
	width := outer - inner

	p.angle = float64(b.stage.Rand.IntN(3600)) * math.Pi / 1800
	randFactor := float64(b.stage.Rand.IntN(1000)) / 1000
	p.distance = inner + randFactor*randFactor*width

	// Simplified relativistic orbital velocity, capped at 0.9c.
	p.relFactor = math.Min(math.Sqrt(b.radius/p.distance), 0.9)
	sin := math.Sin(p.angle)
	p.doppler = 1 / (1 - p.relFactor*sin)

	// T ~ r^(-3/4) for a thin disk, shifted by the Doppler factor, then
	// banded into a coarse blackbody ramp.
	tempRatio := math.Pow(inner/p.distance, 0.75) * p.doppler
	var r, g, bl int
	switch {
	case tempRatio > 1.5:
		// Hottest regions saturate to pure white.
		r, g, bl = 255, 255, 255
	case tempRatio > 1.2:
		r, g, bl = 255, 255, 255
	case tempRatio > 0.8:
		r, g, bl = 255, 255, 220
	case tempRatio > 0.6:
		r, g, bl = 255, 240, 150
	default:
		r, g, bl = 255, 200, 100
	}

	// Relativistic beaming: intensity scales with doppler^4.
	intensity := clampF(math.Pow(p.doppler, 4), 0.1, 3.0)
	p.color = RGB(int(float64(r)*intensity), int(float64(g)*intensity), int(float64(bl)*intensity))

	p.prev = point{}
	p.active = true
	p.hasTrail = true
	p.trail.clear()
	p.trailLife = b.TrailLifetime

	// Keplerian angular speed from the inner-edge ratio.
	p.speed = 0.04 * math.Sqrt(inner/p.distance)

	p.computePalette()
}

// computePalette precomputes the trail fade ramp for the particle's base
// color: each step dims all channels by 12%.
func (p *accretionParticle) computePalette() {
	for i := range p.palette {
		p.palette[i] = p.color.Scale(1 - float64(i)*0.12)
	}
}

// updateDisk advances every disk particle by dt seconds. Particles orbit
// endlessly at fixed radius; the inward-spiral integration is intentionally
// absent. Fading slots keep their frozen position so the erase pass can
// still find them; fully decayed slots reinitialize in place.
func (b *BlackHole) updateDisk(dt float64, now uint32) {
	cx := float64(b.stage.Focus.X)
	cy := float64(b.stage.Focus.Y)
	inner := math.Max(1, b.radius*1.2)

	for i := range b.disk {
		p := &b.disk[i]
		last := p.prev
		p.prev = point{}

		if !p.active {
			if p.hasTrail {
				if elapsedMillis(now, p.trailStart) > p.trailLife {
					p.hasTrail = false
					b.initParticle(p)
				} else {
					p.prev = last // frozen, erase only
				}
			} else {
				b.initParticle(p)
			}
			continue
		}

		// Keplerian motion, faster near the horizon. The inner clamp in the
		// denominator guards a shrinking focal object.
		spin := math.Sqrt(inner / math.Max(p.distance, inner*0.5))
		p.angle += p.speed * spin * dt * 60
		p.angle = math.Mod(p.angle, 2*math.Pi)
		if p.angle < 0 {
			p.angle += 2 * math.Pi
		}

		// Radial clamps absorb rapid focal rescaling between ticks.
		p.distance = math.Max(p.distance, inner*0.1)
		p.distance = math.Min(p.distance, b.outerRadius*1.1)

		distRatio := math.Max(0.1, (p.distance-b.innerRadius)/math.Max(1, b.outerRadius-b.innerRadius))
		p.relFactor = 0.8 + (1-distRatio)*2.0

		sin, cos := math.Sincos(p.angle)
		// Vertical compression fakes an inclined-disk perspective: back of
		// the orbit flattens, front bulges.
		compression := 0.5 - 0.3*cos
		x := int(math.Round(cx + cos*p.distance))
		y := int(math.Round(cy + sin*p.distance*compression))

		if last.ok {
			dx := float64(x - last.x)
			dy := float64(y - last.y)
			if math.Hypot(dx, dy) > 0.5+p.relFactor*0.5 {
				p.trail.pushFront(trailPoint{x: last.x, y: last.y})
				for t := 0; t < p.trail.len(); t++ {
					p.trail.setColor(t, p.palette[t])
				}
			}
		}

		p.prev = point{x: x, y: y, ok: true}
	}
}

// drawDiskBack draws the far half of the disk (sin(angle) ≤ 0), dimmed by
// the viewing-angle visibility factor and occluded by the event horizon:
// pixels inside the horizon radius are never drawn.
func (b *BlackHole) drawDiskBack(cx, cy int) {
	rr := int(math.Round(b.radius))
	for i := range b.disk {
		p := &b.disk[i]
		if !p.active || !p.prev.ok {
			continue
		}
		if math.Sin(p.angle) > 0 {
			continue
		}
		x, y := p.prev.x, p.prev.y
		if !b.stage.inBounds(x, y) {
			continue
		}
		if sqi(x-cx)+sqi(y-cy) <= rr*rr {
			continue // behind the horizon
		}

		vis := math.Max(0.1, 0.8+0.4*math.Sin(p.angle))
		r := int(float64(p.color.R()) * vis)
		g := int(float64(p.color.G()) * vis)
		bl := int(float64(p.color.B()) * vis)
		// Ambient floor so the far side never vanishes entirely.
		r = max(r, 30)
		g = max(g, 25)
		bl = max(bl, 20)
		b.stage.pixel(x, y, RGB(r, g, bl))

		b.drawParticleTrail(p, cx, cy, rr)
	}
}

// drawDiskFront draws the near half of the disk (sin(angle) > 0) on top of
// everything else, with a heating boost for particles skimming the horizon
// and a one-point bright streak on the inner edge.
func (b *BlackHole) drawDiskFront(cx, cy int) {
	rr := int(math.Round(b.radius))
	for i := range b.disk {
		p := &b.disk[i]
		if !p.active || !p.prev.ok {
			continue
		}
		if math.Sin(p.angle) <= 0 {
			continue
		}
		x, y := p.prev.x, p.prev.y
		if !b.stage.inBounds(x, y) {
			continue
		}

		vis := 0.8 + 0.4*math.Sin(p.angle)
		r := p.color.R()
		g := p.color.G()
		bl := p.color.B()

		distToCenter := math.Sqrt(float64(sqi(x-cx) + sqi(y-cy)))

		// Heating boost close to the horizon, applied before visibility so
		// the two effects stay independently tunable.
		if distToCenter < b.radius*1.6 && b.radius > 0 {
			boost := 1 + math.Max(0, (b.radius*1.6-distToCenter)/(b.radius*0.6))*0.9
			r = clamp8(int(float64(r) * boost))
			g = clamp8(int(float64(g) * boost))
			bl = clamp8(int(float64(bl) * boost))
		}

		r = clamp8(int(float64(r) * vis))
		g = clamp8(int(float64(g) * vis))
		bl = clamp8(int(float64(bl) * vis))
		b.stage.pixel(x, y, RGB(r, g, bl))

		b.drawParticleTrail(p, cx, cy, rr)

		// Inner-edge streak: one extra point trailing the particle along
		// the radius vector, remembered for the next erase pass.
		if distToCenter < b.radius*1.4 && distToCenter > b.radius {
			trailAngle := math.Atan2(float64(y-cy), float64(x-cx))
			tx := int(math.Round(float64(x) - math.Cos(trailAngle)*0.6))
			ty := int(math.Round(float64(y) - math.Sin(trailAngle)*0.6))
			if b.stage.inBounds(tx, ty) {
				const trailFactor = 0.6
				c := RGB(
					clamp8(int(float64(r)*trailFactor*1.2)),
					clamp8(int(float64(g)*trailFactor*1.1)),
					clamp8(int(float64(bl)*trailFactor)),
				)
				// Paint only what the erase list can hold; an unrecorded
				// pixel would never be cleaned up.
				if p.trail.pushBack(trailPoint{x: tx, y: ty, color: c}) {
					b.stage.pixel(tx, ty, c)
				}
			}
		}
	}
}

// drawParticleTrail draws a particle's remembered trail points, skipping
// anything off-screen or inside the horizon.
func (b *BlackHole) drawParticleTrail(p *accretionParticle, cx, cy, rr int) {
	for t := 0; t < p.trail.len(); t++ {
		tp := p.trail.at(t)
		if !b.stage.inBounds(tp.x, tp.y) {
			continue
		}
		if sqi(tp.x-cx)+sqi(tp.y-cy) <= rr*rr {
			continue
		}
		b.stage.pixel(tp.x, tp.y, tp.color)
	}
}

// sqi squares an int.
func sqi(v int) int { return v * v }
