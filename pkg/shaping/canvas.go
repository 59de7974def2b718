//go:build canvastext

package shaping

import (
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/go-drift/styledtext/pkg/style"
)

import stderrors "errors"

type canvasFaceKey struct {
	family string
	size   float64
}

// CanvasShaper measures text with tdewolff/canvas font faces. It is a
// measurement backend only: weight and style variants resolve to the
// face data loaded for the family.
type CanvasShaper struct {
	mu       sync.Mutex
	name     string
	families map[string]*canvas.FontFamily
	faces    map[canvasFaceKey]*canvas.FontFace
}

// NewCanvasShaper creates a canvas-backed shaper with one font family
// loaded from TrueType or OpenType data.
func NewCanvasShaper(name string, data []byte) (*CanvasShaper, error) {
	s := &CanvasShaper{
		name:     name,
		families: make(map[string]*canvas.FontFamily),
		faces:    make(map[canvasFaceKey]*canvas.FontFace),
	}
	if err := s.RegisterFont(name, data); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterFont registers a new font family from TrueType or OpenType data.
func (s *CanvasShaper) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.families[name] = family
	return nil
}

// Boring implements Shaper.
func (s *CanvasShaper) Boring(text string, f Font) (Metrics, bool) {
	if !IsBoring(text) {
		return Metrics{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.face(f)
	ascent, descent, lineHeight := canvasFaceMetrics(face)
	return Metrics{
		Width:      math.Ceil(face.TextWidth(text)),
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
	}, true
}

// DesiredWidth implements Shaper.
func (s *CanvasShaper) DesiredWidth(text string, f Font) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.face(f)
	width := 0.0
	for _, paragraph := range strings.Split(text, "\n") {
		width = math.Max(width, face.TextWidth(paragraph))
	}
	return width
}

// Layout implements Shaper.
func (s *CanvasShaper) Layout(text string, f Font, maxWidth float64) (*TextLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.face(f)
	ascent, descent, lineHeight := canvasFaceMetrics(face)
	return buildLayout(text, maxWidth, ascent, descent, lineHeight, face.TextWidth), nil
}

// face resolves and caches a face for the given font. Callers hold mu.
func (s *CanvasShaper) face(f Font) *canvas.FontFace {
	size := f.SizePx
	if size <= 0 {
		size = style.PixelsFromSP(style.DefaultFontSizeSP)
	}
	familyName := f.Family
	if _, ok := s.families[familyName]; !ok {
		familyName = s.name
	}
	key := canvasFaceKey{family: familyName, size: size}
	if face, ok := s.faces[key]; ok {
		return face
	}
	face := s.families[familyName].Face(size, color.Black, canvas.FontRegular, canvas.FontNormal)
	s.faces[key] = face
	return face
}

func canvasFaceMetrics(face *canvas.FontFace) (ascent, descent, lineHeight float64) {
	metrics := face.Metrics()
	ascent = metrics.Ascent
	descent = metrics.Descent
	lineHeight = metrics.LineHeight
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}
	return ascent, descent, lineHeight
}
