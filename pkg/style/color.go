// Package style defines the style attribute vocabulary for styled text:
// colors, font weight and style tri-states, the string parsers that map
// host property values onto them, and scaled-pixel unit conversion.
package style

import (
	"fmt"
	"math"
)

// Color is a 32-bit ARGB color in 0xAARRGGBB layout, the packed integer
// form host props carry. The zero value is fully transparent black.
type Color uint32

// RGBA8 packs four 0-255 channels into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB packs three 0-255 channels into an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA packs three 0-255 channels and a fractional alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return RGBA8(r, g, b, alphaByte(a))
}

// ARGB splits the color back into its four channels.
func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String renders the color in #AARRGGBB form.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// alphaByte maps a fractional alpha onto a byte. Values outside [0, 1]
// and NaN clamp rather than wrap.
func alphaByte(a float64) uint8 {
	if math.IsNaN(a) || a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xFF
	}
	return uint8(math.Round(a * 255))
}

// Basic colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
)
