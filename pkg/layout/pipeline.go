package layout

import "slices"

// Pipeline collects dirty roots and flushes them in a single layout
// pass. Marking any box dirty bubbles up to its root, which schedules
// itself here; the flush then relays the root's last constraints down
// the tree.
type Pipeline struct {
	dirty       []*Box
	dirtySet    map[*Box]bool
	needsLayout bool
}

// NewPipeline creates an empty layout pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		dirtySet: make(map[*Box]bool),
	}
}

// Attach wires a root box (and its subtree) to this pipeline and
// schedules it for an initial pass.
func (p *Pipeline) Attach(root *Box) {
	root.SetOwner(p)
	p.ScheduleLayout(root)
}

// ScheduleLayout queues a box for the next flush. Duplicate schedules
// are coalesced.
func (p *Pipeline) ScheduleLayout(box *Box) {
	if p.dirtySet[box] {
		return
	}
	p.dirtySet[box] = true
	p.dirty = append(p.dirty, box)
	p.needsLayout = true
}

// NeedsLayout reports whether any box is waiting for a flush.
func (p *Pipeline) NeedsLayout() bool {
	return p.needsLayout
}

// FlushLayout lays out every scheduled box, shallowest first, reusing
// each box's previous constraints. The first error aborts the flush
// and leaves the failed box dirty.
func (p *Pipeline) FlushLayout() error {
	if !p.needsLayout {
		return nil
	}
	p.needsLayout = false

	dirty := p.dirty
	p.dirty = nil
	p.dirtySet = make(map[*Box]bool)

	slices.SortFunc(dirty, func(a, b *Box) int {
		return a.Depth() - b.Depth()
	})

	for _, box := range dirty {
		if !box.NeedsLayout() {
			continue
		}
		if err := box.Layout(box.lastWidth, box.lastMode); err != nil {
			p.ScheduleLayout(box)
			return err
		}
	}
	return nil
}

// LayoutRoot lays out root with explicit constraints, flushing any
// other scheduled work first so the whole tree settles in one call.
func (p *Pipeline) LayoutRoot(root *Box, width float64, mode MeasureMode) error {
	if err := root.Layout(width, mode); err != nil {
		return err
	}
	p.unschedule(root)
	return p.FlushLayout()
}

func (p *Pipeline) unschedule(box *Box) {
	if !p.dirtySet[box] {
		return
	}
	delete(p.dirtySet, box)
	for i, b := range p.dirty {
		if b == box {
			p.dirty = append(p.dirty[:i], p.dirty[i+1:]...)
			break
		}
	}
	p.needsLayout = len(p.dirty) > 0
}
