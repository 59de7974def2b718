package layout

import "fmt"

// MeasureMode describes how the width constraint passed to a measure
// function is to be interpreted.
type MeasureMode int

const (
	// ModeUndefined means the box may take any width it needs.
	ModeUndefined MeasureMode = iota
	// ModeExactly means the box must be exactly the given width.
	ModeExactly
	// ModeAtMost means the box may be at most the given width.
	ModeAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case ModeUndefined:
		return "undefined"
	case ModeExactly:
		return "exactly"
	case ModeAtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureFunc computes the content size of a leaf box for the given
// width constraint. Width is Undefined (NaN) when mode is ModeUndefined.
type MeasureFunc func(box *Box, width float64, mode MeasureMode) (Size, error)

// Box is a node in the layout tree. A box either has children or a
// measure function, never both; leaves with content (such as a text
// anchor) register a measure function and the pipeline calls it when
// the box is dirty.
type Box struct {
	Context any // host payload, opaque to layout

	parent   *Box
	children []*Box
	depth    int

	owner       *Pipeline
	measureFunc MeasureFunc

	size        Size
	needsLayout bool
	hasLayout   bool
	lastWidth   float64
	lastMode    MeasureMode
}

// NewBox returns a box that needs an initial layout.
func NewBox() *Box {
	return &Box{needsLayout: true, lastWidth: Undefined}
}

// SetMeasureFunc installs the sizing callback. Boxes with a measure
// function cannot have children.
func (b *Box) SetMeasureFunc(fn MeasureFunc) {
	if fn != nil && len(b.children) > 0 {
		panic("layout: cannot set measure function on a box with children")
	}
	b.measureFunc = fn
	b.MarkNeedsLayout()
}

// MeasureFunc returns the installed sizing callback, if any.
func (b *Box) MeasureFunc() MeasureFunc {
	return b.measureFunc
}

// InsertChild adds child at the given index. Boxes with a measure
// function cannot have children, and a child can have only one parent.
func (b *Box) InsertChild(child *Box, index int) {
	if b.measureFunc != nil {
		panic("layout: cannot add a child to a box with a measure function")
	}
	if child.parent != nil {
		panic("layout: child already has a parent")
	}
	if index < 0 || index > len(b.children) {
		panic(fmt.Sprintf("layout: child index %d out of range", index))
	}
	child.parent = b
	child.setDepth(b.depth + 1)
	child.setOwner(b.owner)
	b.children = append(b.children, nil)
	copy(b.children[index+1:], b.children[index:])
	b.children[index] = child
	b.MarkNeedsLayout()
}

// AddChild appends child as the last child.
func (b *Box) AddChild(child *Box) {
	b.InsertChild(child, len(b.children))
}

// RemoveChild detaches child from this box.
func (b *Box) RemoveChild(child *Box) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.parent = nil
			child.setDepth(0)
			child.setOwner(nil)
			b.MarkNeedsLayout()
			return
		}
	}
}

// ChildCount returns the number of children.
func (b *Box) ChildCount() int {
	return len(b.children)
}

// Child returns the child at index i.
func (b *Box) Child(i int) *Box {
	return b.children[i]
}

// Parent returns the parent box, or nil for a root.
func (b *Box) Parent() *Box {
	return b.parent
}

// Depth returns the tree depth (root = 0).
func (b *Box) Depth() int {
	return b.depth
}

func (b *Box) setDepth(depth int) {
	b.depth = depth
	for _, c := range b.children {
		c.setDepth(depth + 1)
	}
}

// SetOwner assigns the pipeline that schedules this subtree.
func (b *Box) SetOwner(owner *Pipeline) {
	b.setOwner(owner)
}

func (b *Box) setOwner(owner *Pipeline) {
	b.owner = owner
	for _, c := range b.children {
		c.setOwner(owner)
	}
}

// Size returns the size computed by the last layout pass.
func (b *Box) Size() Size {
	return b.size
}

// NeedsLayout reports whether this box is dirty.
func (b *Box) NeedsLayout() bool {
	return b.needsLayout
}

// MarkNeedsLayout marks this box dirty and walks up the tree so the
// root gets scheduled with the pipeline. Intermediate boxes are marked
// along the way; the flush then propagates layout back down through
// every marked box.
func (b *Box) MarkNeedsLayout() {
	if b.needsLayout {
		return
	}
	b.needsLayout = true

	if b.parent != nil {
		b.parent.MarkNeedsLayout()
		return
	}
	if b.owner != nil {
		b.owner.ScheduleLayout(b)
	}
}

// Layout computes this box's size for the given width constraint.
// Clean boxes with unchanged constraints skip the pass entirely.
//
// Leaves with a measure function delegate sizing to it. Boxes with
// children stack them vertically: each child receives the same width
// constraint, the box's height is the sum of child heights, and its
// width is the constraint width when exact, otherwise the widest child.
func (b *Box) Layout(width float64, mode MeasureMode) error {
	if !b.needsLayout && b.hasLayout && b.lastMode == mode && widthEqual(b.lastWidth, width) {
		return nil
	}
	b.lastWidth = width
	b.lastMode = mode
	b.needsLayout = false
	b.hasLayout = true

	if b.measureFunc != nil {
		size, err := b.measureFunc(b, width, mode)
		if err != nil {
			b.needsLayout = true
			return err
		}
		b.size = size
		return nil
	}

	childMode := mode
	if childMode == ModeExactly {
		childMode = ModeAtMost
	}
	var maxWidth, totalHeight float64
	for _, c := range b.children {
		if err := c.Layout(width, childMode); err != nil {
			b.needsLayout = true
			return err
		}
		if c.size.Width > maxWidth {
			maxWidth = c.size.Width
		}
		totalHeight += c.size.Height
	}
	if mode == ModeExactly && !IsUndefined(width) {
		b.size = Size{Width: width, Height: totalHeight}
	} else {
		b.size = Size{Width: maxWidth, Height: totalHeight}
	}
	return nil
}

// widthEqual treats two undefined widths as equal so cached constraints
// compare correctly.
func widthEqual(a, b float64) bool {
	if IsUndefined(a) && IsUndefined(b) {
		return true
	}
	if IsUndefined(a) || IsUndefined(b) {
		return false
	}
	return floatEqual(a, b)
}
