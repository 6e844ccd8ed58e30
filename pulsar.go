package warpfield

import "math"

// pulsarRotationMillis is the beam rotation period.
const pulsarRotationMillis = 2000

// Pulsar animates a rapidly rotating neutron star: a pulsing blue-white
// core with a three-ring corona and two opposite radiation beams sweeping
// around it, intensity breathing on a one-second cycle, with perpendicular
// ripple fans along each beam. The previous beam pair is erased before the
// new angle is drawn.
type Pulsar struct {
	stage Stage

	initialized bool
	radius      int
	prev        point
	prevAngle   float64

	// Quadratic falloff lookup for beam intensity by distance.
	intensityMap [128]uint8
}

// NewPulsar creates a Pulsar drawing against the given stage.
func NewPulsar(stage Stage) *Pulsar {
	p := &Pulsar{stage: stage}
	for i := range p.intensityMap {
		distFactor := float64(i) / 128
		p.intensityMap[i] = uint8(255 * (1 - distFactor*distFactor))
	}
	return p
}

// Draw runs one animation tick.
func (p *Pulsar) Draw() {
	cx, cy := p.stage.Focus.X, p.stage.Focus.Y
	scale := p.stage.Focus.Scale
	p.radius = int(6 * scale)
	now := p.stage.Clock.NowMillis()

	angle := float64(now%pulsarRotationMillis) / pulsarRotationMillis * 2 * math.Pi

	t := float64(now) / 1000
	intensity := 0.5 + 0.5*math.Sin(t)
	maxBeamLength := p.maxBeamLength(cx, cy)

	// Erase the previous beam pair before drawing at the new angle.
	if p.initialized {
		p.eraseBeam(p.prev.x, p.prev.y, p.prevAngle, maxBeamLength, scale)
		p.eraseBeam(p.prev.x, p.prev.y, p.prevAngle+math.Pi, maxBeamLength, scale)
	}
	p.prev = point{x: cx, y: cy, ok: true}
	p.prevAngle = angle
	p.initialized = true

	// Core and corona.
	p.stage.fillCircle(cx, cy, p.radius, RGB(200, 200, 255))
	for i := 0; i < 3; i++ {
		brightness := remap(i, 0, 2, 180, 100)
		p.stage.strokeCircle(cx, cy, p.radius+i, RGB(brightness, brightness, 255))
	}

	p.drawBeam(cx, cy, angle, scale, intensity, maxBeamLength)
	p.drawBeam(cx, cy, angle+math.Pi, scale, intensity, maxBeamLength)

	// Core pulse on a faster cycle than the beam breathing.
	pulse := 0.8 + 0.2*math.Sin(t*3)
	p.stage.fillCircle(cx, cy, p.radius-2, RGB(int(200*pulse), int(200*pulse), int(255*pulse)))
}

// maxBeamLength reaches from the center to the farthest screen edge, plus
// margin, so beams always cross the whole display.
func (p *Pulsar) maxBeamLength(cx, cy int) int {
	w, h := p.stage.Surface.Size()
	return max(max(cx, w-cx), max(cy, h-cy)) + 10
}

// drawBeam paints one radiation beam from the corona outward: falloff-lit
// pixels with a faint inner trail, and a ripple fan every 15 steps.
func (p *Pulsar) drawBeam(cx, cy int, angle, scale, intensity float64, maxLength int) {
	sin, cos := math.Sincos(angle)

	for r := p.radius; r < maxLength; r++ {
		distFactor := math.Min(1, 2*(1-float64(r-p.radius)/float64(maxLength)))
		beam := int(float64(p.intensityMap[min(r, 127)]) * intensity)

		x := cx + int(cos*float64(r))
		y := cy + int(sin*float64(r))

		if p.stage.inBounds(x, y) {
			p.stage.pixel(x, y, RGB(beam, beam, 255))
			if r > p.radius+5 {
				p.stage.pixel(x-int(cos), y-int(sin), RGB(beam/2, beam/2, 255))
			}
		}

		if r%15 == 0 && r > p.radius+15 {
			p.drawRipple(cx, cy, r, angle, scale, intensity*0.7, distFactor)
		}
	}
}

// drawRipple fans pixels perpendicular to the beam at the given distance,
// intensity falling off toward the fan edges.
func (p *Pulsar) drawRipple(cx, cy, distance int, angle, scale, intensity, distFactor float64) {
	rippleWidth := 6 * scale * distFactor
	perp := angle + math.Pi/2
	sinP, cosP := math.Sincos(perp)
	sinA, cosA := math.Sincos(angle)

	for w := 0.0; w <= rippleWidth; w += 0.5 {
		factor := (1 - w/rippleWidth) * intensity
		if factor < 0.05 {
			continue
		}
		for s := -1; s <= 1; s += 2 {
			x := cx + int(cosA*float64(distance)) + int(cosP*w)*s
			y := cy + int(sinA*float64(distance)) + int(sinP*w)*s
			p.stage.pixel(x, y, RGB(int(80*factor), int(80*factor), int(255*factor)))
		}
	}
}

// eraseBeam clears one previously drawn beam: a 3×3 neighborhood per step
// to cover the beam trail, plus the ripple fans at their known intervals.
func (p *Pulsar) eraseBeam(cx, cy int, angle float64, maxLength int, scale float64) {
	sin, cos := math.Sincos(angle)

	for r := p.radius; r < maxLength; r++ {
		x := cx + int(cos*float64(r))
		y := cy + int(sin*float64(r))
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				p.stage.erasePixel(x+dx, y+dy)
			}
		}
		if r%15 == 0 && r > p.radius+15 {
			p.eraseRipple(cx, cy, r, angle, scale)
		}
	}
}

// eraseRipple clears one ripple fan at full width.
func (p *Pulsar) eraseRipple(cx, cy, distance int, angle, scale float64) {
	rippleWidth := 6 * scale
	perp := angle + math.Pi/2
	sinP, cosP := math.Sincos(perp)
	sinA, cosA := math.Sincos(angle)

	for w := 0.0; w <= rippleWidth; w += 0.5 {
		for s := -1; s <= 1; s += 2 {
			x := cx + int(cosA*float64(distance)) + int(cosP*w)*s
			y := cy + int(sinA*float64(distance)) + int(sinP*w)*s
			p.stage.erasePixel(x, y)
		}
	}
}

// Erase clears the core, corona, and both beams at their last drawn angle,
// then resets. Idempotent.
func (p *Pulsar) Erase() {
	if !p.initialized {
		return
	}
	p.stage.fillCircle(p.prev.x, p.prev.y, p.radius+3, p.stage.Background)
	maxLength := p.maxBeamLength(p.prev.x, p.prev.y)
	p.eraseBeam(p.prev.x, p.prev.y, p.prevAngle, maxLength, p.stage.Focus.Scale)
	p.eraseBeam(p.prev.x, p.prev.y, p.prevAngle+math.Pi, maxLength, p.stage.Focus.Scale)
	p.prev = point{}
	p.initialized = false
}
