package warpfield

import (
	"math"
	"testing"
)

func TestCometInitializeAimsAtFocus(t *testing.T) {
	stage, _, _ := testStage(120, 120, 1)
	// Left edge, y=60, zero target jitter, minimum speed.
	stage.Rand = &scriptRand{seq: []int{3, 60, 20, 20, 0}}
	c := NewComet(stage)

	c.Draw()

	if !c.initialized {
		t.Fatal("first Draw should initialize")
	}
	assertNear(t, "vy", c.vy, 0)
	assertNear(t, "speed", math.Hypot(c.vx, c.vy), 0.3)
	if c.vx <= 0 {
		t.Errorf("vx = %f, want rightward toward the focus", c.vx)
	}
	if c.radius != 2 {
		t.Errorf("radius = %d, want 2 at scale 1", c.radius)
	}
}

func TestCometShedsRateLimited(t *testing.T) {
	stage, _, clock := testStage(120, 120, 3)
	c := NewComet(stage)

	// First Draw initializes; lastShed is set to now, so nothing sheds.
	c.Draw()
	if live := liveTail(c); live != 0 {
		t.Fatalf("live tail after first tick = %d, want 0", live)
	}

	clock.advance(16)
	c.Draw()
	if live := liveTail(c); live != 1 {
		t.Fatalf("live tail after second tick = %d, want 1", live)
	}

	// Within the 5 ms window nothing new sheds.
	clock.advance(3)
	c.Draw()
	if live := liveTail(c); live != 1 {
		t.Fatalf("live tail inside the shed window = %d, want 1", live)
	}
}

func TestCometTailParticleExpires(t *testing.T) {
	stage, _, clock := testStage(400, 400, 5)
	c := NewComet(stage)

	c.Draw()
	clock.advance(16)
	c.Draw() // sheds one particle
	first := -1
	for i := range c.tail {
		if c.tail[i].brightness != 0 {
			first = i
			break
		}
	}
	if first < 0 {
		t.Fatal("expected a shed particle")
	}

	clock.advance(cometTailLifetime + 100)
	c.Draw()
	if c.tail[first].brightness != 0 {
		t.Error("tail particle should expire past its lifetime")
	}
}

func TestCometEraseLeavesNothing(t *testing.T) {
	cm, surface, clock := cometOnSurface(120, 120, 7)
	for tick := 0; tick < 80; tick++ {
		cm.Draw()
		clock.advance(16)
		if !cm.initialized {
			break // crossed the screen and self-erased
		}
	}
	cm.Erase()
	if surface.lit() != 0 {
		t.Errorf("teardown left %d pixels lit", surface.lit())
	}
}

func TestCometReinitializesAfterCrossing(t *testing.T) {
	c, _, clock := cometOnSurface(60, 60, 9)

	crossed := false
	for tick := 0; tick < 5000; tick++ {
		c.Draw()
		clock.advance(16)
		if !c.initialized {
			crossed = true
			break
		}
	}
	if !crossed {
		t.Fatal("comet never left a 60×60 screen in 5000 ticks")
	}

	c.Draw()
	if !c.initialized {
		t.Error("next Draw after a crossing should reinitialize")
	}
}

func TestCometEraseIdempotent(t *testing.T) {
	c, surface, clock := cometOnSurface(120, 120, 11)
	c.Draw()
	clock.advance(16)
	c.Draw()

	c.Erase()
	if surface.lit() != 0 {
		t.Fatalf("teardown left %d pixels lit", surface.lit())
	}
	c.Erase()
	if surface.lit() != 0 {
		t.Error("second Erase changed the surface")
	}
}

func cometOnSurface(w, h int, seed uint64) (*Comet, *testSurface, *stubClock) {
	stage, surface, clock := testStage(w, h, seed)
	return NewComet(stage), surface, clock
}

func liveTail(c *Comet) int {
	n := 0
	for i := range c.tail {
		if c.tail[i].brightness != 0 {
			n++
		}
	}
	return n
}
