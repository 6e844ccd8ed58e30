package warpfield

import "math"

const (
	maxFallingStars = 6
	starTrailCap    = 10

	// offscreenMargin is the single escape margin, in pixels beyond every
	// screen edge, used by all falling-star bounds checks.
	offscreenMargin = 10

	// spawnChancePercent is the per-tick probability of activating one
	// inactive falling star.
	spawnChancePercent = 4
)

// fallingStar is one body falling toward the focal object under gravity
// and frame-dragging. Exactly one of {inactive and trail-less, active,
// inactive with fading trail} holds at any time.
type fallingStar struct {
	x, y       float64
	vx, vy     float64
	distance   float64 // cached distance to the focal center
	brightness int
	spinFactor float64 // per-spawn frame-dragging strength multiplier

	active    bool
	hasTrail  bool
	start     uint32
	trailLife uint32

	prev point
}

// updateStars advances every falling star by dt seconds: inverse-square
// gravity toward the center, tangential frame-dragging near the horizon,
// velocity and position integration with a speed ceiling, and the two
// termination conditions (consumed at the horizon, escaped off-screen).
func (b *BlackHole) updateStars(dt float64, now uint32, cx, cy int) {
	w, h := b.stage.Surface.Size()

	for i := range b.stars {
		s := &b.stars[i]
		last := s.prev
		s.prev = point{}

		if !s.active {
			if s.hasTrail {
				if elapsedMillis(now, s.start) > s.trailLife {
					s.hasTrail = false
				} else {
					s.prev = last // hold position while the trail fades
				}
			}
			continue
		}

		dx := float64(cx) - s.x
		dy := float64(cy) - s.y
		distSq := dx*dx + dy*dy
		dist := math.Sqrt(distSq)
		s.distance = dist

		if dist > 0.1 {
			// Inverse-square gravity, capped to keep the integration stable
			// near the singularity.
			gravity := math.Min((b.radius*b.radius*150)/math.Max(distSq, b.radius*0.5), 50)
			accX := dx / dist * gravity
			accY := dy / dist * gravity

			// Frame-dragging: tangential pull near the horizon, stronger
			// closer in, scaled by the star's spawn-time spin factor.
			if dist < b.radius*8 {
				perpX := -dy / dist
				perpY := dx / dist
				spinRadius := b.radius * 4
				effectiveDist := math.Max(dist, spinRadius*0.1)
				spin := math.Min(s.spinFactor*1.5*(spinRadius/effectiveDist), 8)
				accX += perpX * spin
				accY += perpY * spin
			}

			s.vx += accX * dt
			s.vy += accY * dt

			// Speed ceiling.
			speedSq := s.vx*s.vx + s.vy*s.vy
			const maxSpeedSq = 400.0
			if speedSq > maxSpeedSq {
				scale := math.Sqrt(maxSpeedSq / speedSq)
				s.vx *= scale
				s.vy *= scale
			}
		}

		s.x += s.vx * dt
		s.y += s.vy * dt

		x := int(math.Round(s.x))
		y := int(math.Round(s.y))

		consumed := dist <= b.radius
		escaped := x < -offscreenMargin || x >= w+offscreenMargin ||
			y < -offscreenMargin || y >= h+offscreenMargin
		if consumed || escaped {
			s.active = false
			if dist <= b.radius*1.5 {
				// Close enough that the disappearance reads as consumption:
				// one-shot flash on the horizon circle, then a fading trail.
				b.drawConsumptionFlash(cx, cy)
				s.hasTrail = true
				s.trailLife = defaultTrailLifetime
				s.start = now
			} else {
				s.hasTrail = false
			}
			s.prev = last // keep the last drawn position for erasure
			continue
		}

		s.prev = point{x: x, y: y, ok: true}
	}
}

// drawConsumptionFlash paints 8 white points on each of three radii around
// the horizon. The points are deliberately untracked: they land on the
// photon-ring radii, which every subsequent frame repaints.
func (b *BlackHole) drawConsumptionFlash(cx, cy int) {
	for r := 0; r <= 2; r++ {
		for j := 0; j < 8; j++ {
			angle := float64(j) * math.Pi / 4
			fx := int(math.Round(float64(cx) + math.Cos(angle)*(b.radius+float64(r))))
			fy := int(math.Round(float64(cy) + math.Sin(angle)*(b.radius+float64(r))))
			b.stage.pixel(fx, fy, White)
		}
	}
}

// spawnStar probabilistically activates one falling star per tick, placed
// slightly off a random screen edge and aimed at a jittered point near the
// focal center. Slots still holding a fading trail are skipped.
func (b *BlackHole) spawnStar(now uint32, cx, cy int) {
	if b.stage.Rand.IntN(100) >= spawnChancePercent {
		return
	}
	w, h := b.stage.Surface.Size()

	for i := range b.stars {
		s := &b.stars[i]
		if s.active || s.hasTrail {
			continue
		}

		s.active = true
		s.hasTrail = false
		s.start = now
		s.brightness = b.stage.randRange(180, 256)
		s.spinFactor = float64(b.stage.randRange(50, 200)) / 100

		switch b.stage.Rand.IntN(4) {
		case 0: // top
			s.x, s.y = float64(b.stage.Rand.IntN(w)), -5
		case 1: // right
			s.x, s.y = float64(w+4), float64(b.stage.Rand.IntN(h))
		case 2: // bottom
			s.x, s.y = float64(b.stage.Rand.IntN(w)), float64(h+4)
		case 3: // left
			s.x, s.y = -5, float64(b.stage.Rand.IntN(h))
		}

		dx := float64(cx) - s.x
		dy := float64(cy) - s.y
		s.distance = math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx) + float64(b.stage.randRange(-10, 10))*math.Pi/180
		speed := float64(b.stage.randRange(4, 10)) / 10
		s.vx = math.Cos(angle) * speed
		s.vy = math.Sin(angle) * speed
		s.prev = point{}
		b.starTrails[i].clear()
		return // one spawn per check
	}
}

// drawStars draws every active falling star: a brightness-boosted head and,
// near the horizon, synthetic tidal-stretch points along the star-center
// line. Every drawn position is appended to the star's erase list for the
// next frame. Fading stars draw nothing; the erase pass already cleaned
// their pixels.
func (b *BlackHole) drawStars(cx, cy int) {
	for i := range b.stars {
		s := &b.stars[i]
		if !s.active || !s.prev.ok {
			continue
		}
		x, y := s.prev.x, s.prev.y
		if !b.stage.inBounds(x, y) {
			continue
		}

		// Gravity-well brightness boost from the current float position.
		dx := float64(cx) - s.x
		dy := float64(cy) - s.y
		distSq := dx*dx + dy*dy
		dist := math.Sqrt(distSq)

		gravityFactor := math.Min(3, b.radius*20/math.Max(distSq, 1))
		sb := min(255, s.brightness+int(200*gravityFactor))
		sb = max(sb, 20)
		headColor := gray(sb)

		b.stage.pixel(x, y, headColor)
		b.starTrails[i].pushBack(trailPoint{x: x, y: y, color: headColor})

		if dist < b.radius*2 {
			b.drawTidalStretch(s, i, x, y, dx, dy, distSq, dist, sb, cx, cy)
		}
	}
}

// drawTidalStretch synthesizes stretch points along the line between the
// star and the focal center: a leading set toward the center (never inside
// the horizon) and a slightly longer trailing set tinted redder, point
// count driven by a cubic tidal-force estimate.
func (b *BlackHole) drawTidalStretch(s *fallingStar, i, x, y int, dx, dy, distSq, dist float64, sb, cx, cy int) {
	stretchAngle := math.Atan2(dy, dx) // star → center
	sin, cos := math.Sincos(stretchAngle)

	// Tidal force ~ 1/r^3, capped at 6 sample pairs.
	tidal := (b.radius * b.radius * b.radius * 50) / math.Max(distSq*dist, 1)
	n := max(1, int(math.Min(6, tidal)))

	tr := &b.starTrails[i]
	for j := 1; j <= n && tr.len() < tr.cap(); j++ {
		spacing := float64(j) * (0.4 + float64(j)*0.05)

		aheadX := int(math.Round(float64(x) + cos*spacing))
		aheadY := int(math.Round(float64(y) + sin*spacing))
		if b.stage.inBounds(aheadX, aheadY) &&
			math.Sqrt(float64(sqi(aheadX-cx)+sqi(aheadY-cy))) > b.radius {
			intensity := 1 / (float64(j)*0.7 + 1)
			c := RGB(
				clamp8(int(float64(sb)*1.2*intensity)),
				clamp8(int(float64(sb)*1.1*intensity)),
				clamp8(int(float64(sb)*intensity)),
			)
			b.stage.pixel(aheadX, aheadY, c)
			tr.pushBack(trailPoint{x: aheadX, y: aheadY, color: c})
		}

		behindX := int(math.Round(float64(x) - cos*spacing*1.1))
		behindY := int(math.Round(float64(y) - sin*spacing*1.1))
		if b.stage.inBounds(behindX, behindY) && tr.len() < tr.cap() {
			tail := 1 / (float64(j) + 1)
			c := RGB(
				clamp8(int(float64(sb)*1.1*tail)),
				clamp8(int(float64(sb)*0.8*tail)), // redder tint on the tail
				clamp8(int(float64(sb)*0.6*tail)),
			)
			b.stage.pixel(behindX, behindY, c)
			tr.pushBack(trailPoint{x: behindX, y: behindY, color: c})
		}
	}
}
