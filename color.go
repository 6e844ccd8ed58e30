package warpfield

// Color is a packed RGB565 color: 5 bits red, 6 bits green, 5 bits blue.
// The packing matches small TFT display controllers, the displays this
// package grew up on; backends with richer color expand the channels back
// to 8 bits via R, G, and B.
type Color uint16

// White is full-intensity white.
const White = Color(0xFFFF)

// RGB packs 8-bit red, green, and blue channel values into a Color.
// Channel values are clamped to [0, 255].
func RGB(r, g, b int) Color {
	return Color(uint16(clamp8(r)>>3)<<11 | uint16(clamp8(g)>>2)<<5 | uint16(clamp8(b)>>3))
}

// R returns the red channel re-expanded to 8 bits.
func (c Color) R() int { return int((c>>11)&0x1F) << 3 }

// G returns the green channel re-expanded to 8 bits.
func (c Color) G() int { return int((c>>5)&0x3F) << 2 }

// B returns the blue channel re-expanded to 8 bits.
func (c Color) B() int { return int(c&0x1F) << 3 }

// Scale multiplies every channel by f and repacks, clamping to [0, 255].
func (c Color) Scale(f float64) Color {
	return RGB(int(float64(c.R())*f), int(float64(c.G())*f), int(float64(c.B())*f))
}

// clamp8 clamps v to the 8-bit channel range [0, 255].
func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// gray packs an intensity value into all three channels.
func gray(v int) Color {
	return RGB(v, v, v)
}
