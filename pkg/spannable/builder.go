package spannable

import (
	"strings"

	"github.com/go-drift/styledtext/pkg/style"
)

// Span is one committed attribute over a half-open byte range
// [Start, End) of the buffer text.
type Span struct {
	Start int
	End   int
	Attr  Attribute
}

// Builder accumulates text and committed spans. Text is append-only;
// spans commit in call order and later commits win over earlier ones
// where ranges of the same kind overlap.
type Builder struct {
	text  strings.Builder
	spans []Span
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendString appends text to the buffer.
func (b *Builder) AppendString(s string) {
	b.text.WriteString(s)
}

// Len returns the current buffer length in bytes.
func (b *Builder) Len() int {
	return b.text.Len()
}

// String returns the accumulated text.
func (b *Builder) String() string {
	return b.text.String()
}

// SetSpan commits attr over [start, end). Ranges are clamped to the
// buffer; an empty range after clamping commits nothing.
func (b *Builder) SetSpan(start, end int, attr Attribute) {
	if attr == nil {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > b.text.Len() {
		end = b.text.Len()
	}
	if end <= start {
		return
	}
	b.spans = append(b.spans, Span{Start: start, End: end, Attr: attr})
}

// Spans returns the committed spans in commit order. The returned slice
// is shared; callers must not mutate it.
func (b *Builder) Spans() []Span {
	return b.spans
}

// Resolved is the effective style at a single byte offset after all
// committed spans are layered in commit order.
type Resolved struct {
	Foreground    style.Color
	HasForeground bool
	Background    style.Color
	HasBackground bool
	SizePx        int
	HasSize       bool
	Font          FontSpan
	HasFont       bool
	Tag           int
	HasTag        bool
}

// ResolveAt resolves the effective attributes at byte offset i over
// spans committed in order: for each kind the last committed span
// covering i decides the value.
func ResolveAt(spans []Span, i int) Resolved {
	var r Resolved
	for _, s := range spans {
		if i < s.Start || i >= s.End {
			continue
		}
		switch attr := s.Attr.(type) {
		case Foreground:
			r.Foreground = attr.Color
			r.HasForeground = true
		case Background:
			r.Background = attr.Color
			r.HasBackground = true
		case AbsoluteSize:
			r.SizePx = attr.Px
			r.HasSize = true
		case FontSpan:
			r.Font = attr
			r.HasFont = true
		case NodeTag:
			r.Tag = attr.Tag
			r.HasTag = true
		}
	}
	return r
}

// Covering returns the spans covering byte offset i, in commit order.
func Covering(spans []Span, i int) []Span {
	var covering []Span
	for _, s := range spans {
		if i >= s.Start && i < s.End {
			covering = append(covering, s)
		}
	}
	return covering
}

// StyleAt resolves the effective attributes at byte offset i.
func (b *Builder) StyleAt(i int) Resolved {
	return ResolveAt(b.spans, i)
}

// SpansAt returns the committed spans covering byte offset i, in commit
// order.
func (b *Builder) SpansAt(i int) []Span {
	return Covering(b.spans, i)
}
