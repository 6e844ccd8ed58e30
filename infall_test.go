package warpfield

import (
	"math"
	"testing"
)

func TestSpawnStarScriptedPlacement(t *testing.T) {
	stage, _, _ := testStage(120, 120, 1)
	// Gate passes (0 < 4), brightness floor, spin floor, left edge, y=60,
	// centered aim (jitter 0), minimum speed.
	stage.Rand = &scriptRand{seq: []int{0, 0, 0, 3, 60, 10, 0}}
	b := NewBlackHole(stage)
	b.radius = 14

	b.spawnStar(1000, 60, 60)

	s := &b.stars[0]
	if !s.active {
		t.Fatal("star should spawn when the gate passes")
	}
	assertNear(t, "x", s.x, -5)
	assertNear(t, "y", s.y, 60)
	if s.brightness != 180 {
		t.Errorf("brightness = %d, want 180", s.brightness)
	}
	assertNear(t, "spinFactor", s.spinFactor, 0.5)
	assertNear(t, "speed", math.Hypot(s.vx, s.vy), 0.4)
	// Aimed straight at the center with zero jitter.
	assertNear(t, "vy", s.vy, 0)
	if s.vx <= 0 {
		t.Errorf("vx = %f, want rightward toward the center", s.vx)
	}
}

func TestSpawnStarGateBlocks(t *testing.T) {
	stage, _, _ := testStage(120, 120, 1)
	stage.Rand = &scriptRand{seq: []int{50}}
	b := NewBlackHole(stage)

	b.spawnStar(1000, 60, 60)
	for i := range b.stars {
		if b.stars[i].active {
			t.Fatal("no star should spawn when the gate roll fails")
		}
	}
}

func TestSpawnSkipsFadingSlots(t *testing.T) {
	stage, _, _ := testStage(120, 120, 1)
	stage.Rand = &scriptRand{seq: []int{0, 0, 0, 0, 30, 10, 0}}
	b := NewBlackHole(stage)
	b.stars[0].hasTrail = true // still fading, not reusable

	b.spawnStar(1000, 60, 60)

	if b.stars[0].active {
		t.Error("fading slot should not be reused")
	}
	if !b.stars[1].active {
		t.Error("spawn should move to the next free slot")
	}
}

func TestStarConsumedAtHorizon(t *testing.T) {
	b, surface, _ := testHole(120, 120, 1)
	b.radius = 14
	s := &b.stars[0]
	s.active = true
	s.x, s.y = 70, 60 // 10px from center, inside the horizon
	s.brightness = 200
	s.prev = point{x: 70, y: 60, ok: true}

	b.updateStars(0.016, 1000, 60, 60)

	if s.active {
		t.Fatal("star inside the horizon should be consumed")
	}
	if !s.hasTrail {
		t.Error("consumption should leave a fading trail")
	}
	if !s.prev.ok {
		t.Error("last position should be kept for erasure")
	}
	// Consumption flash: white points on the horizon circle.
	if c := surface.at(60+14, 60); c != White {
		t.Errorf("flash pixel = %04x, want white", c)
	}
	if c := surface.at(60, 60+15); c != White {
		t.Errorf("flash pixel at r+1 = %04x, want white", c)
	}
}

func TestStarEscapesWithoutFlash(t *testing.T) {
	b, surface, _ := testHole(120, 120, 1)
	b.radius = 14
	s := &b.stars[0]
	s.active = true
	s.x, s.y = -10.6, 60
	s.vx, s.vy = -100, 0
	s.brightness = 200

	b.updateStars(0.016, 1000, 60, 60)

	if s.active {
		t.Fatal("star past the margin should be deactivated")
	}
	if s.hasTrail {
		t.Error("an escape far from the horizon leaves no trail")
	}
	if surface.lit() != 0 {
		t.Errorf("escape drew %d pixels, want 0", surface.lit())
	}
}

func TestStarSpeedCeiling(t *testing.T) {
	b, _, _ := testHole(240, 240, 1)
	b.radius = 14
	s := &b.stars[0]
	s.active = true
	s.x, s.y = 10, 10
	s.vx, s.vy = 500, 500
	s.brightness = 200

	b.updateStars(0.016, 1000, 120, 120)

	if sp := s.vx*s.vx + s.vy*s.vy; sp > 400+epsilon {
		t.Errorf("speed² = %f, exceeds ceiling 400", sp)
	}
}

func TestStarTrailCapHolds(t *testing.T) {
	b, _, clock := testHole(120, 120, 29)
	for tick := 0; tick < 400; tick++ {
		b.Draw()
		clock.advance(16)
	}
	for i := range b.starTrails {
		if n := b.starTrails[i].len(); n > starTrailCap {
			t.Fatalf("star trail %d len = %d, exceeds %d", i, n, starTrailCap)
		}
	}
}

func TestStarFallsMonotonicallyToConsumption(t *testing.T) {
	stage, _, _ := testStage(240, 240, 1)
	// Left edge at y=60, minimum spin, aimed dead at the center, speed 0.4.
	stage.Rand = &scriptRand{seq: []int{0, 0, 0, 3, 60, 10, 0}}
	b := NewBlackHole(stage)
	b.radius = 14
	b.innerRadius = b.radius * 1.2
	b.outerRadius = b.radius * 2.0

	b.spawnStar(1000, 120, 120)
	s := &b.stars[0]
	if !s.active {
		t.Fatal("expected a spawned star")
	}

	prevX := s.x
	prevDist := math.Hypot(120-s.x, 120-s.y)
	now := uint32(1000)
	for tick := 0; tick < 100000 && s.active; tick++ {
		now += 16
		b.updateStars(0.016, now, 120, 120)
		if !s.active {
			break
		}
		if s.x <= prevX {
			t.Fatalf("tick %d: x = %f did not increase past %f", tick, s.x, prevX)
		}
		dist := math.Hypot(120-s.x, 120-s.y)
		if dist >= prevDist {
			t.Fatalf("tick %d: center distance %f did not shrink below %f", tick, dist, prevDist)
		}
		prevX, prevDist = s.x, dist
	}
	if s.active {
		t.Fatal("star never terminated")
	}
	if !s.hasTrail {
		t.Error("a star falling straight in should be consumed, leaving a trail")
	}
}

func TestStarLifecycleStatesExclusive(t *testing.T) {
	b, _, clock := testHole(120, 120, 31)
	for tick := 0; tick < 600; tick++ {
		b.Draw()
		clock.advance(16)
		for i := range b.stars {
			s := &b.stars[i]
			if s.active && s.hasTrail {
				t.Fatalf("tick %d: star %d both active and fading", tick, i)
			}
		}
	}
}
