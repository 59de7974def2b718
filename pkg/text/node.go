// Package text implements the styled text shadow tree. A tree of nodes
// carrying inheritable style attributes flattens into one spannable
// buffer, and the non-virtual root predicts the buffer's laid-out size
// for the box-layout engine it is registered with.
package text

import (
	"math"

	"github.com/go-drift/styledtext/pkg/layout"
	"github.com/go-drift/styledtext/pkg/shaping"
	"github.com/go-drift/styledtext/pkg/style"
)

// Element is a member of a text shadow tree. Text nodes are the only
// element kind the flattener accepts; any other kind nested under a
// text node is reported as a structural error when the tree flattens.
type Element interface {
	// Tag returns the element's stable host identifier.
	Tag() int
}

// Node is one node of a styled text tree. Style attributes are unset by
// default and inherit from ancestors when a descendant leaves them
// unset. Exactly the non-virtual root of a text tree owns layout; it
// carries the measure function and the prepared flatten output. Virtual
// nodes are pure style and text containers absorbed into that root.
type Node struct {
	tag     int
	virtual bool

	parent   *Node
	children []Element

	text    string
	hasText bool

	color         style.Color
	hasColor      bool
	background    style.Color
	hasBackground bool

	fontSizePx  int
	hasFontSize bool
	fontStyle   style.FontStyle
	fontWeight  style.FontWeight
	fontFamily  string

	numberOfLines    int
	hasNumberOfLines bool
	lineHeightSP     float64
	hasLineHeight    bool

	updated  bool
	prepared *Spanned
	measured Measurement

	box    *layout.Box
	shaper shaping.Shaper
}

// NewNode creates the non-virtual root of a text tree. The node
// registers its measure function with a fresh layout box at
// construction.
func NewNode(tag int) *Node {
	n := newNode(tag, false)
	n.box = layout.NewBox()
	n.box.Context = n
	n.box.SetMeasureFunc(n.measureBox)
	return n
}

// NewVirtualNode creates a virtual text node: a style and text
// container with no layout box of its own.
func NewVirtualNode(tag int) *Node {
	return newNode(tag, true)
}

func newNode(tag int, virtual bool) *Node {
	return &Node{tag: tag, virtual: virtual}
}

// Tag returns the node's stable host identifier.
func (n *Node) Tag() int {
	return n.tag
}

// Virtual reports whether this node is a pure style/text container.
func (n *Node) Virtual() bool {
	return n.virtual
}

// Anchor reports whether this node owns layout for its subtree. It is
// exactly the negation of Virtual: the non-virtual node anchors the
// tree's measurement.
func (n *Node) Anchor() bool {
	return !n.virtual
}

// Parent returns the parent text node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Box returns the layout box of a non-virtual node, nil for virtual
// nodes.
func (n *Node) Box() *layout.Box {
	return n.box
}

// SetShaper overrides the shaping backend used for measurement. The
// default is the shared Go-font shaper.
func (n *Node) SetShaper(s shaping.Shaper) {
	n.shaper = s
}

// AddChild appends child in document order.
func (n *Node) AddChild(child Element) {
	n.InsertChildAt(child, len(n.children))
}

// InsertChildAt inserts child at the given index in document order.
func (n *Node) InsertChildAt(child Element, index int) {
	if index < 0 || index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if c, ok := child.(*Node); ok {
		c.parent = n
	}
	n.markUpdated()
}

// RemoveChildAt detaches and returns the child at index i, or nil when
// out of range.
func (n *Node) RemoveChildAt(i int) Element {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	if c, ok := child.(*Node); ok {
		c.parent = nil
	}
	n.markUpdated()
	return child
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the child at index i.
func (n *Node) ChildAt(i int) Element {
	return n.children[i]
}

// SetText sets the node's raw text.
func (n *Node) SetText(s string) {
	n.text = s
	n.hasText = true
	n.markUpdated()
}

// ClearText removes the node's raw text.
func (n *Node) ClearText() {
	n.text = ""
	n.hasText = false
	n.markUpdated()
}

// Text returns the node's raw text and whether it is set.
func (n *Node) Text() (string, bool) {
	return n.text, n.hasText
}

// SetColor sets the foreground color.
func (n *Node) SetColor(c style.Color) {
	n.color = c
	n.hasColor = true
	n.markUpdated()
}

// ClearColor unsets the foreground color so it inherits again.
func (n *Node) ClearColor() {
	n.color = 0
	n.hasColor = false
	n.markUpdated()
}

// Color returns the foreground color and whether it is set.
func (n *Node) Color() (style.Color, bool) {
	return n.color, n.hasColor
}

// SetBackgroundColor sets the background color.
func (n *Node) SetBackgroundColor(c style.Color) {
	n.background = c
	n.hasBackground = true
	n.markUpdated()
}

// ClearBackgroundColor unsets the background color.
func (n *Node) ClearBackgroundColor() {
	n.background = 0
	n.hasBackground = false
	n.markUpdated()
}

// BackgroundColor returns the background color and whether it is set.
func (n *Node) BackgroundColor() (style.Color, bool) {
	return n.background, n.hasBackground
}

// SetFontSizeSP sets the font size from a scaled-pixel value. The size
// is stored rounded up to whole pixels.
func (n *Node) SetFontSizeSP(sp float64) {
	n.fontSizePx = int(math.Ceil(style.PixelsFromSP(sp)))
	n.hasFontSize = true
	n.markUpdated()
}

// ClearFontSize unsets the font size so the default applies.
func (n *Node) ClearFontSize() {
	n.fontSizePx = 0
	n.hasFontSize = false
	n.markUpdated()
}

// FontSizePx returns the font size in whole pixels and whether it is
// set.
func (n *Node) FontSizePx() (int, bool) {
	return n.fontSizePx, n.hasFontSize
}

// SetFontWeight sets the resolved weight. The node is marked updated
// only when the value actually changes.
func (n *Node) SetFontWeight(w style.FontWeight) {
	if n.fontWeight != w {
		n.fontWeight = w
		n.markUpdated()
	}
}

// FontWeight returns the tri-state font weight.
func (n *Node) FontWeight() style.FontWeight {
	return n.fontWeight
}

// SetFontStyle sets the resolved slant. The node is marked updated only
// when the value actually changes.
func (n *Node) SetFontStyle(s style.FontStyle) {
	if n.fontStyle != s {
		n.fontStyle = s
		n.markUpdated()
	}
}

// FontStyle returns the tri-state font style.
func (n *Node) FontStyle() style.FontStyle {
	return n.fontStyle
}

// SetFontFamily sets the font family name. An empty name unsets it.
func (n *Node) SetFontFamily(name string) {
	n.fontFamily = name
	n.markUpdated()
}

// FontFamily returns the font family name, empty when unset.
func (n *Node) FontFamily() string {
	return n.fontFamily
}

// SetNumberOfLines limits how many lines contribute to the measured
// height. Only meaningful on the root.
func (n *Node) SetNumberOfLines(v int) {
	n.numberOfLines = v
	n.hasNumberOfLines = true
	n.markUpdated()
}

// ClearNumberOfLines removes the line limit.
func (n *Node) ClearNumberOfLines() {
	n.numberOfLines = 0
	n.hasNumberOfLines = false
	n.markUpdated()
}

// NumberOfLines returns the line limit and whether it is set.
func (n *Node) NumberOfLines() (int, bool) {
	return n.numberOfLines, n.hasNumberOfLines
}

// SetLineHeightSP sets an explicit per-line height in scaled pixels.
// Only meaningful on the root; conversion to pixels happens at measure
// time.
func (n *Node) SetLineHeightSP(v float64) {
	n.lineHeightSP = v
	n.hasLineHeight = true
	n.markUpdated()
}

// ClearLineHeight removes the explicit line height.
func (n *Node) ClearLineHeight() {
	n.lineHeightSP = 0
	n.hasLineHeight = false
	n.markUpdated()
}

// LineHeightSP returns the explicit line height and whether it is set.
func (n *Node) LineHeightSP() (float64, bool) {
	return n.lineHeightSP, n.hasLineHeight
}

// markUpdated records that the flattened output is stale. The updated
// flag bubbles to the root, and a non-virtual node also schedules a
// fresh layout pass, since updated text needs to be re-measured.
func (n *Node) markUpdated() {
	if !n.updated {
		n.updated = true
		if n.parent != nil {
			n.parent.markUpdated()
		}
	}
	if !n.virtual && n.box != nil {
		n.box.MarkNeedsLayout()
	}
}

// Updated reports whether this node changed since the last flatten
// consumed it.
func (n *Node) Updated() bool {
	return n.updated
}

// MarkUpdateSeen signals that a pending update has been consumed.
func (n *Node) MarkUpdateSeen() {
	n.updated = false
}

// PrepareForLayout flattens the subtree into the prepared buffer that
// the measure function consumes. Virtual nodes return immediately.
func (n *Node) PrepareForLayout() error {
	if n.virtual {
		return nil
	}
	prepared, err := Flatten(n)
	if err != nil {
		return err
	}
	n.prepared = prepared
	n.markUpdated()
	return nil
}

// Prepared returns the buffer produced by the last PrepareForLayout,
// nil before the first flatten.
func (n *Node) Prepared() *Spanned {
	return n.prepared
}

// CollectUpdates hands the prepared buffer to the render queue, keyed
// by this node's tag. Virtual nodes contribute nothing.
func (n *Node) CollectUpdates(q *UpdateQueue) {
	if n.virtual {
		return
	}
	if n.prepared != nil {
		q.Enqueue(n.tag, n.prepared)
	}
}

// Measured returns the result of the last successful measure, which
// carries the line count alongside the size handed to layout.
func (n *Node) Measured() Measurement {
	return n.measured
}

// measureBox adapts Measure to the layout box's measure function.
func (n *Node) measureBox(box *layout.Box, width float64, mode layout.MeasureMode) (layout.Size, error) {
	m, err := n.Measure(width, mode)
	if err != nil {
		return layout.Size{}, err
	}
	n.measured = m
	return layout.Size{Width: m.Width, Height: m.Height}, nil
}

func (n *Node) shapingBackend() (shaping.Shaper, error) {
	if n.shaper != nil {
		return n.shaper, nil
	}
	return shaping.DefaultShaperErr()
}
