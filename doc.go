// Package warpfield renders continuously evolving celestial animations onto
// pixel-addressable displays that keep no frame buffer the program can diff
// against.
//
// Because nothing holds a previous frame in memory, every visual element
// drawn in one frame must be explicitly erased in the next, using only the
// positions the animation itself remembers. Each animation follows the same
// paint-then-erase-by-memory discipline: one call to Draw performs a full
// erase → update → draw pass, and Erase tears the animation down by clearing
// its remembered footprint.
//
// # Quick start
//
// Create a [Stage] around a display backend and hand it to an animation:
//
//	surface := warpfield.NewImageSurface(240, 240)
//	stage := warpfield.Stage{
//		Surface: surface,
//		Clock:   warpfield.SystemClock{},
//		Rand:    warpfield.SystemRand{},
//		Focus:   &warpfield.Focus{X: 120, Y: 120, Scale: 1},
//	}
//	hole := warpfield.NewBlackHole(stage)
//	for range ticker.C {
//		hole.Draw() // one full erase→update→draw pass
//	}
//
// # Animations
//
// Five animations share the [Animation] contract: [BlackHole] (accretion
// disk, infalling stars, photon ring, gravitational lensing), [Comet],
// [Pulsar], [Star], and [Supernova]. An external controller switches between
// them by calling Erase on the outgoing animation before drawing the
// incoming one.
//
// # Display backends
//
// [ImageSurface] renders into an ebiten image for windowed use, and the
// warpfield/term subpackage renders into a terminal via tcell. Any type
// implementing [Surface] works; [FillCircleOn] and [StrokeCircleOn] let a
// backend with only a pixel primitive rasterize circles with the exact
// pixel sets the erase pass expects.
//
// The package is single-threaded by design: one logical writer drives one
// tick at a time, all pools are fixed-capacity and preallocated, and the
// tick path performs no allocation.
package warpfield
