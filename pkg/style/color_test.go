package style

import "testing"

func TestRGBA8Packing(t *testing.T) {
	tests := []struct {
		r, g, b, a uint8
		want       Color
	}{
		{0xFF, 0x00, 0x00, 0xFF, ColorRed},
		{0x00, 0xFF, 0x00, 0xFF, ColorGreen},
		{0x00, 0x00, 0xFF, 0xFF, ColorBlue},
		{0x10, 0x20, 0x30, 0x40, Color(0x40102030)},
		{0x00, 0x00, 0x00, 0x00, ColorTransparent},
	}
	for _, tt := range tests {
		if got := RGBA8(tt.r, tt.g, tt.b, tt.a); got != tt.want {
			t.Errorf("RGBA8(%d, %d, %d, %d) = %08X, want %08X",
				tt.r, tt.g, tt.b, tt.a, uint32(got), uint32(tt.want))
		}
	}
}

func TestRGBIsOpaque(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    Color
	}{
		{0xFF, 0x00, 0x00, ColorRed},
		{0xFF, 0xFF, 0xFF, ColorWhite},
		{0x11, 0x22, 0x33, Color(0xFF112233)},
	}
	for _, tt := range tests {
		if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGB(%d, %d, %d) = %08X, want %08X",
				tt.r, tt.g, tt.b, uint32(got), uint32(tt.want))
		}
	}
}

func TestRGBAAlphaClamping(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1.0, 0xFF},
		{0.0, 0x00},
		{0.5, 0x80},
		{-0.3, 0x00},
		{2.5, 0xFF},
	}
	for _, tt := range tests {
		c := RGBA(0, 0, 0, tt.alpha)
		if a, _, _, _ := c.ARGB(); a != tt.want {
			t.Errorf("RGBA(0, 0, 0, %v) alpha = %d, want %d", tt.alpha, a, tt.want)
		}
	}
}

func TestARGBRoundTrip(t *testing.T) {
	c := Color(0x80112233)
	a, r, g, b := c.ARGB()
	if a != 0x80 || r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("ARGB() = (%02X, %02X, %02X, %02X), want (80, 11, 22, 33)", a, r, g, b)
	}
	if got := RGBA8(r, g, b, a); got != c {
		t.Errorf("RGBA8 round trip = %08X, want %08X", uint32(got), uint32(c))
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorRed, "#FFFF0000"},
		{ColorTransparent, "#00000000"},
		{Color(0x40102030), "#40102030"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%08X).String() = %q, want %q", uint32(tt.c), got, tt.want)
		}
	}
}
