package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cueNotes = map[Cue][]note{
	CueCollision: {{freq: 110, duration: 150 * time.Millisecond, volume: 0.5}},
	CueLevelUp: {
		{freq: 987.77, duration: 90 * time.Millisecond, volume: 0.4},
		{freq: 1318.51, duration: 180 * time.Millisecond, volume: 0.4},
	},
}

// Stream returns a finite streamer for c.
func Stream(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("sound: unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := tone(sr, n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

func tone(sr beep.SampleRate, n note) (beep.Streamer, error) {
	s, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return nil, fmt.Errorf("sound: tone %.2f Hz: %w", n.freq, err)
	}
	return volume(beep.Take(sr.N(n.duration), s), n.volume), nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// PCM drains s into signed 16-bit little-endian stereo samples.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = min(max(v, -1), 1)
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Cues lists every cue that has a sound.
func Cues() []Cue {
	return []Cue{CueCollision, CueLevelUp}
}
