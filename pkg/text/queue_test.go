package text

import "testing"

func TestUpdateQueue_DrainsInFirstEnqueuedOrder(t *testing.T) {
	q := NewUpdateQueue()
	q.Enqueue(1, &Spanned{Text: "a"})
	q.Enqueue(2, &Spanned{Text: "b"})
	q.Enqueue(3, &Spanned{Text: "c"})

	updates := q.Drain()
	if len(updates) != 3 {
		t.Fatalf("Drain returned %d updates, want 3", len(updates))
	}
	for i, want := range []int{1, 2, 3} {
		if updates[i].Tag != want {
			t.Errorf("update %d tag = %d, want %d", i, updates[i].Tag, want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after drain, want 0", q.Len())
	}
	if q.Drain() != nil {
		t.Errorf("second drain returned updates")
	}
}

func TestUpdateQueue_ReenqueueReplacesInPlace(t *testing.T) {
	q := NewUpdateQueue()
	q.Enqueue(1, &Spanned{Text: "old"})
	q.Enqueue(2, &Spanned{Text: "other"})
	replacement := &Spanned{Text: "new"}
	q.Enqueue(1, replacement)

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want re-enqueue to coalesce", q.Len())
	}
	updates := q.Drain()
	if updates[0].Tag != 1 || updates[0].Text != replacement {
		t.Errorf("first update = tag %d %p, want tag 1 with the replacement buffer",
			updates[0].Tag, updates[0].Text)
	}
	if updates[1].Tag != 2 {
		t.Errorf("second update tag = %d, want 2", updates[1].Tag)
	}
}

func TestUpdateQueue_PendingReportsQueuedBuffer(t *testing.T) {
	q := NewUpdateQueue()
	if _, ok := q.Pending(1); ok {
		t.Fatalf("empty queue reported a pending buffer")
	}
	s := &Spanned{Text: "x"}
	q.Enqueue(1, s)
	if got, ok := q.Pending(1); !ok || got != s {
		t.Errorf("Pending(1) = %v,%v, want the enqueued buffer", got, ok)
	}
}
