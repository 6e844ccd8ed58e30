package warpfield

import (
	"math"
	"testing"
)

func testHole(w, h int, seed uint64) (*BlackHole, *testSurface, *stubClock) {
	stage, surface, clock := testStage(w, h, seed)
	return NewBlackHole(stage), surface, clock
}

func TestInitParticleBounds(t *testing.T) {
	b, _, _ := testHole(120, 120, 3)
	b.radius = 14

	inner := b.radius * 1.2
	outer := b.radius * 2.5
	for i := 0; i < 500; i++ {
		var p accretionParticle
		p.trail = newTrail(accretionTrailCap)
		b.initParticle(&p)

		if p.distance < inner || p.distance > outer {
			t.Fatalf("distance = %f, outside [%f, %f]", p.distance, inner, outer)
		}
		if p.angle < 0 || p.angle >= 2*math.Pi {
			t.Fatalf("angle = %f, outside [0, 2π)", p.angle)
		}
		if p.speed <= 0 {
			t.Fatalf("speed = %f, want > 0", p.speed)
		}
		if !p.active || !p.hasTrail {
			t.Fatal("fresh particle should be active with trail enabled")
		}
		if p.relFactor > 0.9 {
			t.Fatalf("relFactor = %f, exceeds 0.9c cap", p.relFactor)
		}
	}
}

func TestInitParticleMinimumDrawLandsOnInnerEdge(t *testing.T) {
	stage, _, _ := testStage(120, 120, 1)
	stage.Rand = &scriptRand{} // all zeros
	b := NewBlackHole(stage)
	b.radius = 14

	var p accretionParticle
	p.trail = newTrail(accretionTrailCap)
	b.initParticle(&p)

	assertNear(t, "distance at min draw", p.distance, 14*1.2)
	assertNear(t, "angle at min draw", p.angle, 0)
}

func TestPaletteFadesMonotonically(t *testing.T) {
	b, _, _ := testHole(120, 120, 5)
	b.radius = 14

	var p accretionParticle
	p.trail = newTrail(accretionTrailCap)
	b.initParticle(&p)

	for i := 1; i < len(p.palette); i++ {
		if p.palette[i].R() > p.palette[i-1].R() {
			t.Fatalf("palette[%d].R = %d brighter than palette[%d].R = %d",
				i, p.palette[i].R(), i-1, p.palette[i-1].R())
		}
	}
	if p.palette[0] != p.color {
		t.Error("palette[0] should be the base color")
	}
}

func TestUpdateDiskKeepsAngleInRange(t *testing.T) {
	b, _, _ := testHole(120, 120, 9)
	b.radius = 14
	b.innerRadius = b.radius * 1.2
	b.outerRadius = b.radius * 2.0
	for i := range b.disk {
		b.initParticle(&b.disk[i])
	}
	b.disk[0].angle = 2*math.Pi - 0.001
	b.disk[0].speed = 1

	for tick := 0; tick < 50; tick++ {
		b.updateDisk(0.016, 1000+uint32(tick)*16)
		for i := range b.disk {
			a := b.disk[i].angle
			if a < 0 || a >= 2*math.Pi {
				t.Fatalf("tick %d: particle %d angle = %f, outside [0, 2π)", tick, i, a)
			}
		}
	}
}

func TestUpdateDiskClampsRadialExcursion(t *testing.T) {
	b, _, _ := testHole(120, 120, 11)
	b.radius = 14
	b.innerRadius = b.radius * 1.2
	b.outerRadius = b.radius * 2.0
	for i := range b.disk {
		b.initParticle(&b.disk[i])
	}
	// Simulate a focal rescale leaving stale radii behind.
	b.disk[0].distance = 500
	b.disk[1].distance = 0.01

	b.updateDisk(0.016, 1016)

	if b.disk[0].distance > b.outerRadius*1.1 {
		t.Errorf("distance = %f, exceeds outer clamp %f", b.disk[0].distance, b.outerRadius*1.1)
	}
	inner := math.Max(1, b.radius*1.2)
	if b.disk[1].distance < inner*0.1 {
		t.Errorf("distance = %f, below inner clamp %f", b.disk[1].distance, inner*0.1)
	}
}

func TestDiskTrailNeverExceedsCapacity(t *testing.T) {
	b, _, clock := testHole(120, 120, 13)
	for tick := 0; tick < 200; tick++ {
		b.Draw()
		clock.advance(16)
	}
	for i := range b.disk {
		if n := b.disk[i].trail.len(); n > accretionTrailCap {
			t.Fatalf("particle %d trail len = %d, exceeds %d", i, n, accretionTrailCap)
		}
	}
}

func TestFadedSlotReinitializes(t *testing.T) {
	b, _, _ := testHole(120, 120, 17)
	b.radius = 14
	b.innerRadius = b.radius * 1.2
	b.outerRadius = b.radius * 2.0
	for i := range b.disk {
		b.initParticle(&b.disk[i])
	}

	p := &b.disk[0]
	p.active = false
	p.hasTrail = true
	p.trailStart = 1000
	p.trailLife = 600
	p.prev = point{x: 60, y: 40, ok: true}

	// Inside the lifetime: slot frozen for erasure, not recycled.
	b.updateDisk(0.016, 1500)
	if p.active {
		t.Fatal("slot recycled before the trail lifetime expired")
	}
	if !p.prev.ok {
		t.Fatal("fading slot should keep its frozen position")
	}

	// Past the lifetime: slot reinitializes.
	b.updateDisk(0.016, 1700)
	if !p.active {
		t.Fatal("slot should reinitialize after the trail lifetime")
	}
}

func TestDerivedRadiiFromScale(t *testing.T) {
	b, _, _ := testHole(240, 240, 19)
	b.stage.Focus.Scale = 1
	b.Draw()

	assertNear(t, "horizon radius", b.radius, 14)
	assertNear(t, "inner radius", b.innerRadius, 16.8)
	assertNear(t, "outer radius", b.outerRadius, 28)
}

func TestBackHalfOccludedByHorizon(t *testing.T) {
	b, surface, clock := testHole(240, 240, 23)
	for tick := 0; tick < 30; tick++ {
		b.Draw()
		clock.advance(16)
	}

	// Nothing from the disk may survive strictly inside the horizon,
	// excluding the swirl points which live at 0.15r and beyond.
	cx, cy := 120, 120
	if c := surface.at(cx, cy); c != 0 {
		t.Errorf("center pixel = %04x, want background", c)
	}
}
