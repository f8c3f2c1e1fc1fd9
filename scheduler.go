package main

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// FrameScheduler runs a callback once before the next repaint
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// tickScheduler queues frame callbacks until the host calls Tick.
// Callbacks requested while a tick is running are deferred to the next tick;
// callbacks cancelled while a tick is running are skipped.
type tickScheduler struct {
	pending   []frameRequest
	running   []frameRequest // Batch of the tick in progress
	cancelled map[FrameID]bool
	nextID    FrameID
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{}
}

func (t *tickScheduler) RequestFrame(fn func()) FrameID {
	t.nextID++
	t.pending = append(t.pending, frameRequest{id: t.nextID, fn: fn})
	return t.nextID
}

func (t *tickScheduler) CancelFrame(id FrameID) {
	for i, r := range t.pending {
		if r.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
	for _, r := range t.running {
		if r.id == id {
			if t.cancelled == nil {
				t.cancelled = make(map[FrameID]bool)
			}
			t.cancelled[id] = true
			return
		}
	}
}

// Pending returns the number of queued callbacks
func (t *tickScheduler) Pending() int {
	return len(t.pending)
}

// Tick runs every callback queued before the call
func (t *tickScheduler) Tick() {
	t.running = t.pending
	t.pending = nil
	for _, r := range t.running {
		if t.cancelled[r.id] {
			continue
		}
		r.fn()
	}
	t.running = nil
	t.cancelled = nil
}
