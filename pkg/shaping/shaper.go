// Package shaping measures and wraps text for layout. A Shaper turns a
// flattened text buffer and a resolved base font into line metrics; the
// measurer picks its sizing strategy from the shaper's answers. Backends
// are interchangeable: Go font rasterization for real metrics, fixed
// metrics for deterministic tests, and an optional canvas backend.
package shaping

import (
	"sync"

	"github.com/go-drift/styledtext/pkg/errors"
	"github.com/go-drift/styledtext/pkg/style"
)

// Font is the resolved base font for one measurement pass.
type Font struct {
	SizePx float64
	Weight style.FontWeight
	Style  style.FontStyle
	Family string
}

// Metrics reports single-line measurements for boring text. Width is
// rounded up to a whole pixel.
type Metrics struct {
	Width      float64
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Line is a single laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// TextLayout is the result of shaping text at a width constraint.
// Width is the constraint the layout was built against when one was
// given, otherwise the widest line.
type TextLayout struct {
	Width      float64
	Height     float64
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []Line
}

// LineCount returns the number of laid-out lines.
func (l *TextLayout) LineCount() int {
	return len(l.Lines)
}

// LineBottom returns the bottom offset of the line at index i. Indexes
// are clamped to the laid-out range.
func (l *TextLayout) LineBottom(i int) float64 {
	if i < 0 {
		return 0
	}
	if i >= len(l.Lines) {
		return l.Height
	}
	return l.LineHeight * float64(i+1)
}

// SingleLine builds a one-line layout from boring metrics.
func SingleLine(text string, m Metrics) *TextLayout {
	return &TextLayout{
		Width:      m.Width,
		Height:     m.LineHeight,
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		LineHeight: m.LineHeight,
		Lines:      []Line{{Text: text, Width: m.Width}},
	}
}

// Shaper is the measurement backend.
type Shaper interface {
	// Boring returns single-line metrics when text can shape as one
	// simple left-to-right line.
	Boring(text string, f Font) (Metrics, bool)
	// DesiredWidth returns the width of the widest paragraph laid out
	// without wrapping.
	DesiredWidth(text string, f Font) float64
	// Layout shapes text wrapped to maxWidth. A non-positive, NaN, or
	// infinite maxWidth disables wrapping.
	Layout(text string, f Font, maxWidth float64) (*TextLayout, error)
}

var (
	defaultShaper     Shaper
	defaultShaperErr  error
	defaultShaperOnce sync.Once
)

// DefaultShaperErr returns a shared Go-font shaper.
// It returns both the shaper and any error that occurred during initialization.
func DefaultShaperErr() (Shaper, error) {
	defaultShaperOnce.Do(func() {
		s, err := NewGoFontShaper()
		if err != nil {
			defaultShaperErr = err
			errors.Report(&errors.TextError{
				Op:   "shaping.DefaultShaper",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		defaultShaper = s
	})
	return defaultShaper, defaultShaperErr
}

// DefaultShaper returns a shared Go-font shaper, or nil if it failed to
// initialize.
func DefaultShaper() Shaper {
	s, _ := DefaultShaperErr()
	return s
}
