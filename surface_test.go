package warpfield

import "testing"

func collectPixels(raster func(set func(x, y int))) map[[2]int]int {
	pts := make(map[[2]int]int)
	raster(func(x, y int) { pts[[2]int{x, y}]++ })
	return pts
}

func TestFillCircleOnDegenerate(t *testing.T) {
	pts := collectPixels(func(set func(x, y int)) { FillCircleOn(5, 5, 0, set) })
	if len(pts) != 1 || pts[[2]int{5, 5}] == 0 {
		t.Errorf("r=0 fill = %v, want exactly the center", pts)
	}

	pts = collectPixels(func(set func(x, y int)) { FillCircleOn(5, 5, -1, set) })
	if len(pts) != 0 {
		t.Errorf("negative radius fill drew %d pixels, want 0", len(pts))
	}
}

func TestStrokeCircleOnDegenerate(t *testing.T) {
	pts := collectPixels(func(set func(x, y int)) { StrokeCircleOn(5, 5, 0, set) })
	if len(pts) != 1 || pts[[2]int{5, 5}] == 0 {
		t.Errorf("r=0 stroke = %v, want exactly the center", pts)
	}
}

func TestFillCircleOnCoversEquation(t *testing.T) {
	const r = 7
	pts := collectPixels(func(set func(x, y int)) { FillCircleOn(0, 0, r, set) })
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			inside := dx*dx+dy*dy <= r*r
			_, drawn := pts[[2]int{dx, dy}]
			if inside != drawn {
				t.Fatalf("pixel (%d,%d): inside=%v drawn=%v", dx, dy, inside, drawn)
			}
		}
	}
}

func TestStrokeCircleOnSymmetry(t *testing.T) {
	const r = 9
	pts := collectPixels(func(set func(x, y int)) { StrokeCircleOn(0, 0, r, set) })
	for p := range pts {
		for _, q := range [][2]int{{-p[0], p[1]}, {p[0], -p[1]}, {p[1], p[0]}} {
			if _, ok := pts[q]; !ok {
				t.Fatalf("stroke missing 8-way mirror of (%d,%d)", p[0], p[1])
			}
		}
	}
}

// Erasing a circle with the same primitive it was drawn with must clear
// every pixel: the whole erase discipline rests on this symmetry.
func TestDrawEraseSymmetry(t *testing.T) {
	s := newTestSurface(40, 40)

	s.FillCircle(20, 20, 8, White)
	s.FillCircle(20, 20, 8, 0)
	if s.lit() != 0 {
		t.Errorf("fill/erase left %d pixels", s.lit())
	}

	s.StrokeCircle(20, 20, 8, White)
	s.StrokeCircle(20, 20, 8, 0)
	if s.lit() != 0 {
		t.Errorf("stroke/erase left %d pixels", s.lit())
	}
}

func TestSurfaceClipsAtEdges(t *testing.T) {
	s := newTestSurface(10, 10)
	// Centered off-screen, overlapping the corner.
	s.FillCircle(-2, -2, 5, White)
	if s.lit() == 0 {
		t.Error("expected clipped overlap pixels")
	}
	for p := range s.pixels {
		if p[0] < 0 || p[0] >= 10 || p[1] < 0 || p[1] >= 10 {
			t.Fatalf("pixel (%d,%d) outside surface", p[0], p[1])
		}
	}
}
