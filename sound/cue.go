// Package sound plays short synthesized cues for game events.
package sound

import "github.com/Steeze/arcade-game/ecs"

type Cue int

const (
	CueCollision Cue = iota
	CueLevelUp
)

func (c Cue) String() string {
	switch c {
	case CueCollision:
		return "collision"
	case CueLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the frame.
type Player interface {
	Play(c Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue) {}

// CueFor maps a tick event to the cue it should trigger.
func CueFor(evt ecs.Event) (Cue, bool) {
	switch evt.Type {
	case ecs.EventCollision:
		return CueCollision, true
	case ecs.EventGoalReached:
		return CueLevelUp, true
	default:
		return 0, false
	}
}

// PlayEvents plays the cue for each event, at most once per cue kind so a
// multi-enemy hit does not stack the same sound.
func PlayEvents(p Player, events []ecs.Event) {
	if p == nil {
		return
	}
	played := make(map[Cue]bool, 2)
	for _, evt := range events {
		c, ok := CueFor(evt)
		if !ok || played[c] {
			continue
		}
		played[c] = true
		p.Play(c)
	}
}
