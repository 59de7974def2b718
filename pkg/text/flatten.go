package text

import (
	"fmt"
	"math"

	"github.com/go-drift/styledtext/pkg/errors"
	"github.com/go-drift/styledtext/pkg/spannable"
	"github.com/go-drift/styledtext/pkg/style"
)

import stderrors "errors"

// Spanned is a flattened text buffer with its committed style spans.
// It is produced fresh by every flatten call and never updated in
// place.
type Spanned struct {
	Text  string
	Spans []spannable.Span
}

// StyleAt resolves the effective attributes at byte offset i.
func (s *Spanned) StyleAt(i int) spannable.Resolved {
	return spannable.ResolveAt(s.Spans, i)
}

// TagAt returns the tag of the innermost node covering byte offset i.
// Hit testing maps a position in the rendered text back to the node
// that contributed it.
func (s *Spanned) TagAt(i int) (int, bool) {
	r := spannable.ResolveAt(s.Spans, i)
	return r.Tag, r.HasTag
}

// Flatten converts the tree rooted at root into a single spannable
// buffer. It is callable only on a non-virtual root; virtual nodes
// flatten as part of an ancestor's call.
//
// Text appends in document order while range operations record
// leaf-to-root. The operations then commit walking the recorded list
// backward, so every ancestor's span lands before any descendant's:
// span storage lets later commits win over the overlap, which keeps a
// narrow descendant override visible inside a broad ancestor range.
// Committing the other way around would leave the ancestor as the
// final word and wipe out descendant styling.
func Flatten(root *Node) (*Spanned, error) {
	if root.virtual {
		return nil, &errors.TextError{
			Op:   "text.Flatten",
			Kind: errors.KindPrecondition,
			Tag:  root.tag,
			Err:  stderrors.New("flatten called on a virtual node"),
		}
	}
	builder := spannable.NewBuilder()
	var ops []spannable.Span
	if err := appendNode(root, builder, &ops); err != nil {
		return nil, err
	}
	if !root.hasFontSize {
		// The default size commits before the backward walk so it sits
		// underneath every recorded operation.
		builder.SetSpan(0, builder.Len(), spannable.AbsoluteSize{
			Px: int(math.Ceil(style.PixelsFromSP(style.DefaultFontSizeSP))),
		})
	}
	for i := len(ops) - 1; i >= 0; i-- {
		builder.SetSpan(ops[i].Start, ops[i].End, ops[i].Attr)
	}
	return &Spanned{Text: builder.String(), Spans: builder.Spans()}, nil
}

func appendNode(node *Node, builder *spannable.Builder, ops *[]spannable.Span) error {
	start := builder.Len()
	if node.hasText {
		builder.AppendString(node.text)
	}
	for _, child := range node.children {
		textChild, ok := child.(*Node)
		if !ok {
			return structureError(node, child)
		}
		if err := appendNode(textChild, builder, ops); err != nil {
			return err
		}
		textChild.MarkUpdateSeen()
	}
	end := builder.Len()
	if end > start {
		if node.hasColor {
			*ops = append(*ops, spannable.Span{Start: start, End: end, Attr: spannable.Foreground{Color: node.color}})
		}
		if node.hasBackground {
			*ops = append(*ops, spannable.Span{Start: start, End: end, Attr: spannable.Background{Color: node.background}})
		}
		if node.hasFontSize {
			*ops = append(*ops, spannable.Span{Start: start, End: end, Attr: spannable.AbsoluteSize{Px: node.fontSizePx}})
		}
		if node.fontStyle != style.FontStyleUnset || node.fontWeight != style.FontWeightUnset || node.fontFamily != "" {
			*ops = append(*ops, spannable.Span{Start: start, End: end, Attr: spannable.FontSpan{
				Style:  node.fontStyle,
				Weight: node.fontWeight,
				Family: node.fontFamily,
			}})
		}
		*ops = append(*ops, spannable.Span{Start: start, End: end, Attr: spannable.NodeTag{Tag: node.tag}})
	}
	return nil
}

func structureError(parent *Node, child Element) error {
	return &errors.TextError{
		Op:   "text.Flatten",
		Kind: errors.KindStructure,
		Err: &errors.StructureError{
			ParentTag: parent.tag,
			Got:       fmt.Sprintf("%T", child),
		},
	}
}
