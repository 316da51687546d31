package main

import (
	"sync"

	"github.com/Steeze/arcade-game/component"
	"github.com/gdamore/tcell/v2"
)

// statusLine is the score sink of the terminal frontend.
type statusLine struct {
	mu   sync.Mutex
	text string
}

func (s *statusLine) Report(score, level int) {
	s.mu.Lock()
	s.text = component.FormatScore(score, level)
	s.mu.Unlock()
}

func (s *statusLine) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Draw writes the line on row, blanking the rest of it.
func (s *statusLine) Draw(screen tcell.Screen, row int) {
	width, _ := screen.Size()
	text := []rune(s.String())
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		screen.SetContent(x, row, r, nil, tcell.StyleDefault)
	}
}
