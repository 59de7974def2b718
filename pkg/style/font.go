package style

import "fmt"

// FontWeight is the resolved weight of a text run. The zero value means
// the attribute is unset and inherits from an ancestor node.
type FontWeight int

const (
	FontWeightUnset FontWeight = iota
	FontWeightNormal
	FontWeightBold
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightUnset:
		return "unset"
	case FontWeightNormal:
		return "normal"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// FontStyle is the resolved slant of a text run. The zero value means
// the attribute is unset and inherits from an ancestor node.
type FontStyle int

const (
	FontStyleUnset FontStyle = iota
	FontStyleNormal
	FontStyleItalic
)

// String returns a human-readable representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleUnset:
		return "unset"
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// ParseNumericFontWeight recognizes exactly the three-character CSS
// weights "100".."900" and reports the numeric value. It is a fast-path
// classifier, not a general integer parser: "099", "050", and "1000"
// are all rejected.
func ParseNumericFontWeight(s string) (int, bool) {
	if len(s) == 3 && s[1] == '0' && s[2] == '0' && s[0] >= '1' && s[0] <= '9' {
		return 100 * int(s[0]-'0'), true
	}
	return 0, false
}

// ResolveFontWeight maps a font-weight property string to the tri-state
// weight. Numeric weights of 500 and above and the literal "bold"
// resolve to bold; "normal" and numeric weights below 500 resolve to
// normal; anything else leaves the attribute unset.
func ResolveFontWeight(s string) FontWeight {
	numeric, isNumeric := ParseNumericFontWeight(s)
	switch {
	case (isNumeric && numeric >= 500) || s == "bold":
		return FontWeightBold
	case s == "normal" || (isNumeric && numeric < 500):
		return FontWeightNormal
	default:
		return FontWeightUnset
	}
}

// ResolveFontStyle maps a font-style property string to the tri-state
// style. Unrecognized tokens leave the attribute unset.
func ResolveFontStyle(s string) FontStyle {
	switch s {
	case "italic":
		return FontStyleItalic
	case "normal":
		return FontStyleNormal
	default:
		return FontStyleUnset
	}
}
