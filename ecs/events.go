package ecs

// Event is one message between systems. Type names the message; Data is
// whatever payload the producer and its consumer agree on.
type Event struct {
	Type string
	Data any
}

// EventQueue buffers events until a system drains them, so an event pushed
// late in one tick is seen by a consumer early in the next. Two buffers
// alternate between pushing and draining.
type EventQueue struct {
	pending []Event
	drained []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Drain hands back the queued events in push order and empties the queue.
// The returned slice stays valid until the next Drain.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = q.drained[:0]
	q.drained = out
	return out
}
