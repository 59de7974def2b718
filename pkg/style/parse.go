package style

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/styledtext/pkg/errors"
)

// namedColors matches the platform color-name table the host exposes.
// Note "green" is full-intensity 0x00FF00 there, not the CSS 0x008000.
var namedColors = map[string]Color{
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"yellow":      Color(0xFFFFFF00),
	"cyan":        Color(0xFF00FFFF),
	"aqua":        Color(0xFF00FFFF),
	"magenta":     Color(0xFFFF00FF),
	"fuchsia":     Color(0xFFFF00FF),
	"lime":        Color(0xFF00FF00),
	"maroon":      Color(0xFF800000),
	"navy":        Color(0xFF000080),
	"olive":       Color(0xFF808000),
	"purple":      Color(0xFF800080),
	"silver":      Color(0xFFC0C0C0),
	"teal":        Color(0xFF008080),
	"gray":        Color(0xFF888888),
	"grey":        Color(0xFF888888),
	"darkgray":    Color(0xFF444444),
	"darkgrey":    Color(0xFF444444),
	"lightgray":   Color(0xFFCCCCCC),
	"lightgrey":   Color(0xFFCCCCCC),
}

// ParseColor converts a color string to an ARGB Color. Accepted forms:
// #rgb, #rrggbb, #rrggbbaa, rgb(r,g,b), rgba(r,g,b,a), hsl(h,s%,l%),
// and platform color names. An empty or unrecognized string is a parse
// error; the caller decides whether absence clears the attribute.
func ParseColor(s string) (Color, error) {
	input := strings.TrimSpace(s)
	lower := strings.ToLower(input)

	switch {
	case input == "":
		return 0, parseColorError("color", s)
	case strings.HasPrefix(input, "#"):
		return parseHexColor(input)
	case strings.HasPrefix(lower, "rgba("):
		return parseColorFunc(lower, "rgba", 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseColorFunc(lower, "rgb", 3)
	case strings.HasPrefix(lower, "hsl("):
		return parseHSLColor(lower)
	}
	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	return 0, parseColorError("color", s)
}

func parseHexColor(s string) (Color, error) {
	var alpha uint8 = 0xFF
	hex := s
	// #rrggbbaa carries the alpha in the trailing byte; split it off so
	// the remaining #rrggbb goes through the shared hex parser.
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return 0, parseColorError("hex color", s)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	if len(hex) != 4 && len(hex) != 7 {
		return 0, parseColorError("hex color", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, parseColorError("hex color", s)
	}
	r, g, b := c.RGB255()
	return RGBA8(r, g, b, alpha), nil
}

func parseColorFunc(s, name string, arity int) (Color, error) {
	body, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return 0, parseColorError(name+" color", s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return 0, parseColorError(name+" color", s)
	}
	parts := strings.Split(body, ",")
	if len(parts) != arity {
		return 0, parseColorError(name+" color", s)
	}
	channels := make([]uint8, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return 0, parseColorError(name+" color", s)
		}
		channels[i] = uint8(v)
	}
	alpha := 1.0
	if arity == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return 0, parseColorError(name+" color", s)
		}
		alpha = a
	}
	return RGBA(channels[0], channels[1], channels[2], alpha), nil
}

func parseHSLColor(s string) (Color, error) {
	body, ok := strings.CutPrefix(s, "hsl(")
	if !ok {
		return 0, parseColorError("hsl color", s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return 0, parseColorError("hsl color", s)
	}
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return 0, parseColorError("hsl color", s)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, parseColorError("hsl color", s)
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return 0, parseColorError("hsl color", s)
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return 0, parseColorError("hsl color", s)
	}
	r, g, b := colorful.Hsl(h, sat, light).Clamped().RGB255()
	return RGB(r, g, b), nil
}

func parsePercent(s string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func parseColorError(dataType, got string) error {
	return &errors.ParseError{Source: "color", DataType: dataType, Got: got}
}
