package warpfield

// Surface is the display primitive contract every animation draws against.
// Coordinates are screen pixels with the origin at the top-left and Y
// increasing downward. Callers are responsible for coordinate validity on
// SetPixel; the kernel bounds-checks before every pixel call. FillCircle
// and StrokeCircle clip internally.
//
// A Surface holds no frame history: whatever is painted stays until
// something paints over it, which is exactly why the animations track and
// erase their own footprints.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// SetPixel writes one pixel. (x, y) must be inside [0,w)×[0,h).
	SetPixel(x, y int, c Color)
	// FillCircle paints a filled circle, clipped to the surface.
	FillCircle(cx, cy, r int, c Color)
	// StrokeCircle paints a one-pixel circle outline, clipped to the surface.
	StrokeCircle(cx, cy, r int, c Color)
}

// FillCircleOn rasterizes a filled circle of radius r centered at (cx, cy),
// calling set once per covered pixel, without clipping. Backends that only
// have a pixel primitive build FillCircle on top of this so that drawing
// and erasing the same circle touch identical pixel sets.
func FillCircleOn(cx, cy, r int, set func(x, y int)) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		// Horizontal span at this row from the circle equation.
		dx := 0
		for dx*dx+dy*dy <= r*r {
			dx++
		}
		dx--
		for x := cx - dx; x <= cx+dx; x++ {
			set(x, cy+dy)
		}
	}
}

// StrokeCircleOn rasterizes a one-pixel circle outline using the midpoint
// circle algorithm, calling set once per pixel, without clipping. Like
// FillCircleOn it guarantees draw/erase symmetry for pixel-only backends.
func StrokeCircleOn(cx, cy, r int, set func(x, y int)) {
	if r < 0 {
		return
	}
	if r == 0 {
		set(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		set(cx+x, cy+y)
		set(cx+y, cy+x)
		set(cx-y, cy+x)
		set(cx-x, cy+y)
		set(cx-x, cy-y)
		set(cx-y, cy-x)
		set(cx+y, cy-x)
		set(cx+x, cy-y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
