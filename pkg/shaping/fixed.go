package shaping

import (
	"math"

	"github.com/rivo/uniseg"
)

// FixedShaper measures text with a constant advance per grapheme
// cluster, independent of font. Tests and headless hosts use it to get
// deterministic measurements without rasterizing anything.
type FixedShaper struct {
	Advance    float64
	Ascent     float64
	LineHeight float64
}

// NewFixedShaper returns a fixed shaper with a 10px advance and a 16px
// line grid.
func NewFixedShaper() *FixedShaper {
	return &FixedShaper{Advance: 10, Ascent: 12, LineHeight: 16}
}

// Boring implements Shaper.
func (s *FixedShaper) Boring(text string, f Font) (Metrics, bool) {
	if !IsBoring(text) {
		return Metrics{}, false
	}
	return Metrics{
		Width:      math.Ceil(s.measure(text)),
		Ascent:     s.Ascent,
		Descent:    s.LineHeight - s.Ascent,
		LineHeight: s.LineHeight,
	}, true
}

// DesiredWidth implements Shaper.
func (s *FixedShaper) DesiredWidth(text string, f Font) float64 {
	width := 0.0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			width = math.Max(width, s.measure(text[start:i]))
			start = i + 1
		}
	}
	return width
}

// Layout implements Shaper.
func (s *FixedShaper) Layout(text string, f Font, maxWidth float64) (*TextLayout, error) {
	return buildLayout(text, maxWidth, s.Ascent, s.LineHeight-s.Ascent, s.LineHeight, s.measure), nil
}

func (s *FixedShaper) measure(text string) float64 {
	return s.Advance * float64(uniseg.GraphemeClusterCount(text))
}
