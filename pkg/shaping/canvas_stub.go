//go:build !canvastext

package shaping

import stderrors "errors"

var errCanvasNotBuilt = stderrors.New("shaping: built without canvastext support")

// CanvasShaper is a stub without the canvastext build tag.
type CanvasShaper struct{}

// NewCanvasShaper reports that canvas support is not compiled in.
func NewCanvasShaper(name string, data []byte) (*CanvasShaper, error) {
	return nil, errCanvasNotBuilt
}

// RegisterFont reports that canvas support is not compiled in.
func (s *CanvasShaper) RegisterFont(name string, data []byte) error {
	return errCanvasNotBuilt
}

// Boring implements Shaper.
func (s *CanvasShaper) Boring(text string, f Font) (Metrics, bool) {
	return Metrics{}, false
}

// DesiredWidth implements Shaper.
func (s *CanvasShaper) DesiredWidth(text string, f Font) float64 {
	return 0
}

// Layout implements Shaper.
func (s *CanvasShaper) Layout(text string, f Font, maxWidth float64) (*TextLayout, error) {
	return nil, errCanvasNotBuilt
}
