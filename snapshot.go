package warpfield

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Snapshot writes the surface's current contents to path as a PNG. Useful
// for inspecting a frame while chasing erase leaks or layering bugs.
func (s *ImageSurface) Snapshot(path string) error {
	pixels := make([]byte, 4*s.w*s.h)
	s.img.ReadPixels(pixels)

	// All writes are opaque, so premultiplied RGBA and straight RGBA agree.
	img := &image.RGBA{Pix: pixels, Stride: 4 * s.w, Rect: image.Rect(0, 0, s.w, s.h)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
