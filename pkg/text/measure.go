package text

import (
	"math"

	"github.com/go-drift/styledtext/pkg/errors"
	"github.com/go-drift/styledtext/pkg/layout"
	"github.com/go-drift/styledtext/pkg/shaping"
	"github.com/go-drift/styledtext/pkg/style"
)

import stderrors "errors"

// Measurement is the predicted size of a flattened buffer. LineCount is
// always the shaped count; the line limit and explicit line height only
// adjust Height.
type Measurement struct {
	Width     float64
	Height    float64
	LineCount int
}

// Measure predicts the size of the prepared buffer within the given
// width constraint. An undefined (NaN) width or ModeUndefined means
// unconstrained. PrepareForLayout must have produced a buffer first;
// measuring without one is a call-ordering bug and fails fast.
//
// Three strategies cover the content and constraint shapes:
// complex text that is unconstrained or fits lays out once at its
// natural width; boring text that fits keeps its single-line metrics;
// anything else wraps inside the available width.
func (n *Node) Measure(width float64, mode layout.MeasureMode) (Measurement, error) {
	if n.prepared == nil {
		return Measurement{}, &errors.TextError{
			Op:   "text.Measure",
			Kind: errors.KindPrecondition,
			Tag:  n.tag,
			Err:  stderrors.New("text has not been prepared before measure"),
		}
	}
	shaper, err := n.shapingBackend()
	if err != nil {
		return Measurement{}, &errors.TextError{
			Op:   "text.Measure",
			Kind: errors.KindShape,
			Tag:  n.tag,
			Err:  err,
		}
	}

	content := n.prepared.Text
	font := n.baseFont()
	unconstrained := mode == layout.ModeUndefined || layout.IsUndefined(width)

	boring, isBoring := shaper.Boring(content, font)
	desired := math.NaN()
	if !isBoring {
		desired = shaper.DesiredWidth(content, font)
	}

	var shaped *shaping.TextLayout
	switch {
	case !isBoring && (unconstrained || (!math.IsNaN(desired) && desired <= width)):
		shaped, err = shaper.Layout(content, font, math.Ceil(desired))
	case isBoring && (unconstrained || boring.Width <= width):
		shaped = shaping.SingleLine(content, boring)
	default:
		shaped, err = shaper.Layout(content, font, float64(int(width)))
	}
	if err != nil {
		return Measurement{}, &errors.TextError{
			Op:   "text.Measure",
			Kind: errors.KindShape,
			Tag:  n.tag,
			Err:  err,
		}
	}

	m := Measurement{
		Width:     shaped.Width,
		Height:    shaped.Height,
		LineCount: shaped.LineCount(),
	}
	if n.hasNumberOfLines && n.numberOfLines < m.LineCount {
		m.Height = shaped.LineBottom(n.numberOfLines - 1)
	}
	if n.hasLineHeight {
		lines := m.LineCount
		if n.hasNumberOfLines && n.numberOfLines < lines {
			lines = n.numberOfLines
		}
		m.Height = style.PixelsFromSP(n.lineHeightSP) * float64(lines)
	}
	return m, nil
}

// baseFont resolves the font the shaper measures with. Measurement
// uses one font for the whole buffer, taken from the root's own
// attributes; the committed spans refine rendering on the host side.
func (n *Node) baseFont() shaping.Font {
	f := shaping.Font{
		Weight: n.fontWeight,
		Style:  n.fontStyle,
		Family: n.fontFamily,
	}
	if n.hasFontSize {
		f.SizePx = float64(n.fontSizePx)
	} else {
		f.SizePx = math.Ceil(style.PixelsFromSP(style.DefaultFontSizeSP))
	}
	return f
}
