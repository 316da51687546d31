package sound

import (
	"testing"

	"github.com/Steeze/arcade-game/ecs"
)

func TestCueFor(t *testing.T) {
	cases := []struct {
		name string
		evt  ecs.Event
		want Cue
		ok   bool
	}{
		{"collision", ecs.Event{Type: ecs.EventCollision}, CueCollision, true},
		{"goal", ecs.Event{Type: ecs.EventGoalReached}, CueLevelUp, true},
		{"other", ecs.Event{Type: "other"}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CueFor(c.evt)
			if ok != c.ok || got != c.want {
				t.Fatalf("CueFor(%v) = %v, %v; want %v, %v", c.evt.Type, got, ok, c.want, c.ok)
			}
		})
	}
}

type recordPlayer struct{ cues []Cue }

func (p *recordPlayer) Play(c Cue) { p.cues = append(p.cues, c) }

func TestPlayEventsOncePerCue(t *testing.T) {
	p := &recordPlayer{}
	PlayEvents(p, []ecs.Event{
		{Type: ecs.EventCollision},
		{Type: ecs.EventCollision},
		{Type: ecs.EventGoalReached},
	})
	if len(p.cues) != 2 || p.cues[0] != CueCollision || p.cues[1] != CueLevelUp {
		t.Fatalf("unexpected cues %v", p.cues)
	}
	PlayEvents(nil, []ecs.Event{{Type: ecs.EventCollision}})
}

func TestPCMLength(t *testing.T) {
	cases := []struct {
		name   string
		cue    Cue
		frames int
	}{
		{"collision", CueCollision, SampleRate.N(cueNotes[CueCollision][0].duration)},
		{"level_up", CueLevelUp, SampleRate.N(cueNotes[CueLevelUp][0].duration) + SampleRate.N(cueNotes[CueLevelUp][1].duration)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Stream(c.cue, SampleRate)
			if err != nil {
				t.Fatalf("stream: %v", err)
			}
			pcm := PCM(s)
			if len(pcm) != c.frames*4 {
				t.Fatalf("expected %d bytes, got %d", c.frames*4, len(pcm))
			}
			silent := true
			for _, b := range pcm {
				if b != 0 {
					silent = false
					break
				}
			}
			if silent {
				t.Fatalf("cue rendered as silence")
			}
		})
	}
}

func TestStreamUnknownCue(t *testing.T) {
	if _, err := Stream(Cue(99), SampleRate); err == nil {
		t.Fatalf("expected error for unknown cue")
	}
}
