package warpfield

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSurface implements Surface on an ebiten image, for windowed use or
// offscreen rendering. Pixels are written individually on the CPU side;
// ebiten uploads dirty regions when the image is drawn.
type ImageSurface struct {
	img  *ebiten.Image
	w, h int
}

// NewImageSurface creates an ImageSurface of the given pixel dimensions,
// cleared to black.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: ebiten.NewImage(w, h), w: w, h: h}
}

// Image returns the backing ebiten image for compositing into a frame.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) { return s.w, s.h }

// SetPixel writes one pixel. (x, y) must be inside the surface.
func (s *ImageSurface) SetPixel(x, y int, c Color) {
	s.img.Set(x, y, color.RGBA{R: uint8(c.R()), G: uint8(c.G()), B: uint8(c.B()), A: 0xFF})
}

// FillCircle paints a filled circle, clipped to the surface.
func (s *ImageSurface) FillCircle(cx, cy, r int, c Color) {
	FillCircleOn(cx, cy, r, func(x, y int) {
		if x >= 0 && x < s.w && y >= 0 && y < s.h {
			s.SetPixel(x, y, c)
		}
	})
}

// StrokeCircle paints a circle outline, clipped to the surface.
func (s *ImageSurface) StrokeCircle(cx, cy, r int, c Color) {
	StrokeCircleOn(cx, cy, r, func(x, y int) {
		if x >= 0 && x < s.w && y >= 0 && y < s.h {
			s.SetPixel(x, y, c)
		}
	})
}
