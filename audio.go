package main

import (
	"log"

	"github.com/Steeze/arcade-game/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// cuePlayer plays pre-rendered cue clips through the ebiten audio context.
type cuePlayer struct {
	ctx     *audio.Context
	clips   map[sound.Cue][]byte
	playing map[sound.Cue]*audio.Player
}

// newCuePlayer renders every cue up front. Only one audio context may exist
// per process.
func newCuePlayer() (*cuePlayer, error) {
	clips := make(map[sound.Cue][]byte)
	for _, c := range sound.Cues() {
		s, err := sound.Stream(c, sound.SampleRate)
		if err != nil {
			return nil, err
		}
		clips[c] = sound.PCM(s)
	}
	return &cuePlayer{
		ctx:     audio.NewContext(int(sound.SampleRate)),
		clips:   clips,
		playing: make(map[sound.Cue]*audio.Player, len(clips)),
	}, nil
}

func (p *cuePlayer) Play(c sound.Cue) {
	clip, ok := p.clips[c]
	if !ok {
		log.Printf("[sound] no clip for %s", c)
		return
	}
	if prev := p.playing[c]; prev != nil && prev.IsPlaying() {
		if err := prev.Rewind(); err != nil {
			log.Printf("[sound] rewind %s: %v", c, err)
		}
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.Play()
	p.playing[c] = player
}
