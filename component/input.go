package component

import "sync/atomic"

// Direction is one discrete player move.
type Direction int32

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// ParseDirection maps "left", "up", "right" and "down" to a Direction.
// Anything else is DirNone.
func ParseDirection(s string) Direction {
	switch s {
	case "left":
		return DirLeft
	case "up":
		return DirUp
	case "right":
		return DirRight
	case "down":
		return DirDown
	}
	return DirNone
}

func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return "none"
}

// InputSlot holds at most one pending direction. Set may be called from any
// goroutine; the last write before Take wins.
type InputSlot struct {
	pending atomic.Int32
}

// Set records d as the pending direction. Invalid directions are ignored.
func (s *InputSlot) Set(d Direction) {
	if s == nil || !d.Valid() {
		return
	}
	s.pending.Store(int32(d))
}

// Take returns the pending direction and empties the slot.
func (s *InputSlot) Take() Direction {
	if s == nil {
		return DirNone
	}
	return Direction(s.pending.Swap(int32(DirNone)))
}

// Clear drops any pending direction.
func (s *InputSlot) Clear() {
	if s == nil {
		return
	}
	s.pending.Store(int32(DirNone))
}
