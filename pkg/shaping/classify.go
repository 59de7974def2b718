package shaping

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// IsBoring reports whether text can shape as a single simple line:
// no line or tab breaks, no combining marks, and a plain left-to-right
// paragraph direction. Complex text falls through to the full layout
// path instead of the single-line fast path.
func IsBoring(text string) bool {
	if text == "" {
		return true
	}
	if !utf8.ValidString(text) {
		return false
	}
	ascii := true
	for _, r := range text {
		if r == '\n' || r == '\t' {
			return false
		}
		if r >= utf8.RuneSelf {
			ascii = false
			if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
				return false
			}
		}
	}
	if ascii {
		return true
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return false
	}
	// Direction is only defined once Order has resolved the runs. A
	// single left-to-right run is boring; multiple runs mean mixed
	// direction.
	o, err := p.Order()
	if err != nil || o.NumRuns() != 1 {
		return false
	}
	return o.Direction() == bidi.LeftToRight
}
