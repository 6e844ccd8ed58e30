// Package term renders warpfield animations in a terminal using tcell.
// Each character cell holds two vertically stacked pixels drawn with the
// upper half block rune, so a W×H terminal gives a W×2H pixel surface.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/warpfield"
)

// Surface is a warpfield.Surface backed by a tcell screen. Pixels are
// buffered; call Show to flush them to the terminal.
type Surface struct {
	screen tcell.Screen
	width  int
	height int
	pixels []warpfield.Color
}

// New initializes the terminal and returns a surface covering it. Call
// Fini when done to restore the terminal state.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return newSurface(screen)
}

func newSurface(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.HideCursor()

	cols, rows := screen.Size()
	s := &Surface{
		screen: screen,
		width:  cols,
		height: rows * 2,
	}
	s.pixels = make([]warpfield.Color, s.width*s.height)
	return s, nil
}

// Size returns the pixel dimensions, twice the terminal height.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// SetPixel stores a pixel. Out-of-range coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c warpfield.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = c
}

// FillCircle draws a filled circle into the pixel buffer.
func (s *Surface) FillCircle(cx, cy, r int, c warpfield.Color) {
	warpfield.FillCircleOn(cx, cy, r, func(x, y int) {
		s.SetPixel(x, y, c)
	})
}

// StrokeCircle draws a circle outline into the pixel buffer.
func (s *Surface) StrokeCircle(cx, cy, r int, c warpfield.Color) {
	warpfield.StrokeCircleOn(cx, cy, r, func(x, y int) {
		s.SetPixel(x, y, c)
	})
}

// Show flushes the pixel buffer to the terminal. Each cell's foreground
// carries the upper pixel and its background the lower one.
func (s *Surface) Show() {
	rows := s.height / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < s.width; col++ {
			upper := s.pixels[(row*2)*s.width+col]
			lower := s.pixels[(row*2+1)*s.width+col]
			style := tcell.StyleDefault.
				Foreground(rgbColor(upper)).
				Background(rgbColor(lower))
			s.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	s.screen.Show()
}

// PollEvent blocks until the next terminal event.
func (s *Surface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Fini restores the terminal.
func (s *Surface) Fini() {
	s.screen.Fini()
}

func rgbColor(c warpfield.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
