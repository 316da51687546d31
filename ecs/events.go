package ecs

// EventType names what happened during a tick.
type EventType string

const (
	// EventCollision fires once per enemy the player touched.
	EventCollision EventType = "collision"
	// EventGoalReached fires when the player crosses the goal row.
	EventGoalReached EventType = "goal_reached"
)

// Event is a tick event payload.
type Event struct {
	Type EventType
	Data any
}

// ScoreChange is the payload of collision and goal events.
type ScoreChange struct {
	Score int
	Level int
}

// EventQueue is a simple FIFO queue.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
