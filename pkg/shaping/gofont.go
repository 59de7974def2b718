package shaping

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/styledtext/pkg/style"
)

import stderrors "errors"

type goFaceKey struct {
	family string
	size   float64
	weight style.FontWeight
	style  style.FontStyle
}

// GoFontShaper measures text with the bundled Go fonts through the
// x/image opentype rasterizer. Extra families can be registered from
// TrueType data; a registered family is used whenever a measurement
// names it, regardless of weight or style.
type GoFontShaper struct {
	mu       sync.Mutex
	families map[string]*sfnt.Font
	faces    map[goFaceKey]font.Face

	regular    *sfnt.Font
	bold       *sfnt.Font
	italic     *sfnt.Font
	boldItalic *sfnt.Font
}

// NewGoFontShaper parses the bundled Go font variants.
func NewGoFontShaper() (*GoFontShaper, error) {
	s := &GoFontShaper{
		families: make(map[string]*sfnt.Font),
		faces:    make(map[goFaceKey]font.Face),
	}
	var err error
	if s.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("parsing go regular: %w", err)
	}
	if s.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("parsing go bold: %w", err)
	}
	if s.italic, err = opentype.Parse(goitalic.TTF); err != nil {
		return nil, fmt.Errorf("parsing go italic: %w", err)
	}
	if s.boldItalic, err = opentype.Parse(gobolditalic.TTF); err != nil {
		return nil, fmt.Errorf("parsing go bold italic: %w", err)
	}
	return s, nil
}

// RegisterFont parses TrueType data and makes it available under the
// given family name.
func (s *GoFontShaper) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font family name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.families[name] = parsed
	return nil
}

// Boring implements Shaper.
func (s *GoFontShaper) Boring(text string, f Font) (Metrics, bool) {
	if !IsBoring(text) {
		return Metrics{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	face, err := s.face(f)
	if err != nil {
		return Metrics{}, false
	}
	ascent, descent, lineHeight := faceMetrics(face)
	return Metrics{
		Width:      math.Ceil(fromFixed(font.MeasureString(face, text))),
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
	}, true
}

// DesiredWidth implements Shaper.
func (s *GoFontShaper) DesiredWidth(text string, f Font) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	face, err := s.face(f)
	if err != nil {
		return 0
	}
	width := 0.0
	for _, paragraph := range strings.Split(text, "\n") {
		width = math.Max(width, fromFixed(font.MeasureString(face, paragraph)))
	}
	return width
}

// Layout implements Shaper.
func (s *GoFontShaper) Layout(text string, f Font, maxWidth float64) (*TextLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	face, err := s.face(f)
	if err != nil {
		return nil, err
	}
	ascent, descent, lineHeight := faceMetrics(face)
	measure := func(run string) float64 {
		return fromFixed(font.MeasureString(face, run))
	}
	return buildLayout(text, maxWidth, ascent, descent, lineHeight, measure), nil
}

// face resolves and caches a face for the given font. Callers hold mu.
func (s *GoFontShaper) face(f Font) (font.Face, error) {
	size := f.SizePx
	if size <= 0 {
		size = style.PixelsFromSP(style.DefaultFontSizeSP)
	}
	key := goFaceKey{family: f.Family, size: size, weight: f.Weight, style: f.Style}
	if face, ok := s.faces[key]; ok {
		return face, nil
	}
	src := s.families[f.Family]
	if src == nil {
		switch {
		case f.Weight == style.FontWeightBold && f.Style == style.FontStyleItalic:
			src = s.boldItalic
		case f.Weight == style.FontWeightBold:
			src = s.bold
		case f.Style == style.FontStyleItalic:
			src = s.italic
		default:
			src = s.regular
		}
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[key] = face
	return face, nil
}

func faceMetrics(face font.Face) (ascent, descent, lineHeight float64) {
	metrics := face.Metrics()
	ascent = fromFixed(metrics.Ascent)
	descent = fromFixed(metrics.Descent)
	lineHeight = fromFixed(metrics.Height)
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}
	return ascent, descent, lineHeight
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
