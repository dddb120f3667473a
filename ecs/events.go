package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CharacterEventKind identifies character state events.
type CharacterEventKind string

const (
	CharacterEventActionStarted   CharacterEventKind = "action_started"
	CharacterEventActionCompleted CharacterEventKind = "action_completed"
)

// CharacterEvent is emitted by the character system when an action begins or
// ends. An action replaced by another one ends too.
type CharacterEvent struct {
	Entity Entity
	Kind   CharacterEventKind
	Action string
}

// EventQueue is a simple FIFO queue. Events live until the end of the tick
// that pushed them.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns the queued events without clearing them, so several systems
// can observe the same tick's events.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
