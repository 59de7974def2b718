package text

import "sync"

// Update pairs a node tag with the prepared buffer that should replace the
// host view's current text.
type Update struct {
	Tag  int
	Text *Spanned
}

// UpdateQueue collects prepared buffers keyed by node tag until the render
// side drains them. Enqueueing again for a tag that is already pending
// replaces its buffer without changing its place in line.
type UpdateQueue struct {
	mu      sync.Mutex
	order   []int
	pending map[int]*Spanned
}

func NewUpdateQueue() *UpdateQueue {
	return &UpdateQueue{pending: make(map[int]*Spanned)}
}

// Enqueue records s as the pending buffer for tag.
func (q *UpdateQueue) Enqueue(tag int, s *Spanned) {
	q.mu.Lock()
	if _, ok := q.pending[tag]; !ok {
		q.order = append(q.order, tag)
	}
	q.pending[tag] = s
	q.mu.Unlock()
}

// Pending reports the buffer currently queued for tag, if any.
func (q *UpdateQueue) Pending(tag int) (*Spanned, bool) {
	q.mu.Lock()
	s, ok := q.pending[tag]
	q.mu.Unlock()
	return s, ok
}

// Len reports how many tags have a pending buffer.
func (q *UpdateQueue) Len() int {
	q.mu.Lock()
	n := len(q.pending)
	q.mu.Unlock()
	return n
}

// Drain returns and clears the pending updates in first-enqueued order.
func (q *UpdateQueue) Drain() []Update {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.order) == 0 {
		return nil
	}
	updates := make([]Update, 0, len(q.order))
	for _, tag := range q.order {
		updates = append(updates, Update{Tag: tag, Text: q.pending[tag]})
	}
	q.order = q.order[:0]
	q.pending = make(map[int]*Spanned)
	return updates
}
