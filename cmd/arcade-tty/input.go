package main

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/gdamore/tcell/v2"
)

// keyAction is what a key press means to the terminal frontend.
type keyAction struct {
	dir  component.Direction
	quit bool
}

func mapKey(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyAction{dir: component.DirLeft}
	case tcell.KeyUp:
		return keyAction{dir: component.DirUp}
	case tcell.KeyRight:
		return keyAction{dir: component.DirRight}
	case tcell.KeyDown:
		return keyAction{dir: component.DirDown}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyAction{quit: true}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return keyAction{dir: component.DirLeft}
		case 'w', 'k':
			return keyAction{dir: component.DirUp}
		case 'd', 'l':
			return keyAction{dir: component.DirRight}
		case 's', 'j':
			return keyAction{dir: component.DirDown}
		case 'q':
			return keyAction{quit: true}
		}
	}
	return keyAction{}
}

// directionSink receives moves from the input goroutine.
type directionSink interface {
	HandleInput(d component.Direction)
}

// readInput forwards key presses until the screen is finalized or a quit
// key is pressed. It runs on its own goroutine; the player's input slot is
// the only state it touches.
func readInput(screen tcell.Screen, player directionSink, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action := mapKey(ev)
			if action.quit {
				quit()
				return
			}
			if action.dir != component.DirNone {
				player.HandleInput(action.dir)
			}
		}
	}
}
