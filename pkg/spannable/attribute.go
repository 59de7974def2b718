// Package spannable provides the flattened text buffer: a string being
// assembled plus style attributes attached to half-open byte ranges.
// Attributes committed later layer on top of earlier ones, so the order
// in which SetSpan is called decides what is visible where ranges of
// the same kind overlap.
package spannable

import (
	"fmt"

	"github.com/go-drift/styledtext/pkg/style"
)

// AttrKind discriminates the closed set of attributes a text tree can
// attach to a range.
type AttrKind int

const (
	AttrForeground AttrKind = iota
	AttrBackground
	AttrSize
	AttrFont
	AttrTag
)

func (k AttrKind) String() string {
	switch k {
	case AttrForeground:
		return "foreground"
	case AttrBackground:
		return "background"
	case AttrSize:
		return "size"
	case AttrFont:
		return "font"
	case AttrTag:
		return "tag"
	default:
		return fmt.Sprintf("AttrKind(%d)", int(k))
	}
}

// Attribute is one style instruction attachable to a byte range.
type Attribute interface {
	Kind() AttrKind
}

// Foreground sets the text color over a range.
type Foreground struct {
	Color style.Color
}

func (Foreground) Kind() AttrKind { return AttrForeground }

func (a Foreground) String() string {
	return fmt.Sprintf("foreground(%s)", a.Color)
}

// Background sets the background color over a range.
type Background struct {
	Color style.Color
}

func (Background) Kind() AttrKind { return AttrBackground }

func (a Background) String() string {
	return fmt.Sprintf("background(%s)", a.Color)
}

// AbsoluteSize sets the font size in whole pixels over a range.
type AbsoluteSize struct {
	Px int
}

func (AbsoluteSize) Kind() AttrKind { return AttrSize }

func (a AbsoluteSize) String() string {
	return fmt.Sprintf("size(%dpx)", a.Px)
}

// FontSpan carries the combined font face selection: slant, weight, and
// family travel as one attribute because they resolve to one face.
type FontSpan struct {
	Style  style.FontStyle
	Weight style.FontWeight
	Family string
}

func (FontSpan) Kind() AttrKind { return AttrFont }

func (a FontSpan) String() string {
	if a.Family != "" {
		return fmt.Sprintf("font(%s,%s,%q)", a.Style, a.Weight, a.Family)
	}
	return fmt.Sprintf("font(%s,%s)", a.Style, a.Weight)
}

// NodeTag maps a range back to the text node that produced it, for
// hit-testing by the host.
type NodeTag struct {
	Tag int
}

func (NodeTag) Kind() AttrKind { return AttrTag }

func (a NodeTag) String() string {
	return fmt.Sprintf("tag(%d)", a.Tag)
}
