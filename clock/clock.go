// Package clock supplies the per-tick delta time that drives the game loop.
package clock

import "time"

// MaxDelta is the largest delta, in seconds, a single tick may report.
const MaxDelta = 0.06

// Clock reports the seconds elapsed since its previous Delta call.
type Clock interface {
	Delta() float64
}

// Resetter is implemented by clocks that can restart their measurement,
// e.g. when the loop starts after a long asset load.
type Resetter interface {
	Reset()
}

// System measures wall-clock time between calls.
type System struct {
	now  func() time.Time
	last time.Time
	max  float64
}

func NewSystem() *System {
	s := &System{now: time.Now, max: MaxDelta}
	s.Reset()
	return s
}

func (s *System) Reset() {
	s.last = s.now()
}

func (s *System) Delta() float64 {
	now := s.now()
	dt := now.Sub(s.last).Seconds()
	s.last = now
	return clamp(dt, s.max)
}

func clamp(dt, limit float64) float64 {
	if dt < 0 {
		return 0
	}
	if limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// Manual is a deterministic clock for tests and replays. Queued deltas are
// returned first, then Step forever.
type Manual struct {
	Step  float64
	queue []float64
}

func NewManual(step float64) *Manual {
	return &Manual{Step: step}
}

// Push queues deltas to be returned before falling back to Step.
func (m *Manual) Push(deltas ...float64) {
	m.queue = append(m.queue, deltas...)
}

func (m *Manual) Delta() float64 {
	if len(m.queue) == 0 {
		return m.Step
	}
	dt := m.queue[0]
	m.queue = m.queue[1:]
	return dt
}

// Reset drops queued deltas.
func (m *Manual) Reset() {
	m.queue = nil
}
