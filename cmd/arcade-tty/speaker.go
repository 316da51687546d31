package main

import (
	"log"
	"time"

	"github.com/Steeze/arcade-game/sound"
	"github.com/gopxl/beep/speaker"
)

// speakerPlayer plays cues through the beep speaker. speaker.Init is
// process-wide.
type speakerPlayer struct{}

func newSpeakerPlayer() (*speakerPlayer, error) {
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &speakerPlayer{}, nil
}

func (p *speakerPlayer) Play(c sound.Cue) {
	s, err := sound.Stream(c, sound.SampleRate)
	if err != nil {
		log.Printf("[sound] %v", err)
		return
	}
	speaker.Play(s)
}

func (p *speakerPlayer) Close() {
	speaker.Close()
}
