package main

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyDirections = []struct {
	keys []ebiten.Key
	dir  component.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, component.DirLeft},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, component.DirUp},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, component.DirRight},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, component.DirDown},
}

var padDirections = []struct {
	button ebiten.StandardGamepadButton
	dir    component.Direction
}{
	{ebiten.StandardGamepadButtonLeftLeft, component.DirLeft},
	{ebiten.StandardGamepadButtonLeftTop, component.DirUp},
	{ebiten.StandardGamepadButtonLeftRight, component.DirRight},
	{ebiten.StandardGamepadButtonLeftBottom, component.DirDown},
}

// pollDirection returns the direction pressed this frame, if any. When
// several are pressed on the same frame the last one in table order wins,
// matching the player's last-write-wins slot.
func pollDirection() component.Direction {
	dir := component.DirNone
	for _, kd := range keyDirections {
		for _, k := range kd.keys {
			if inpututil.IsKeyJustPressed(k) {
				dir = kd.dir
			}
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, pd := range padDirections {
			if inpututil.IsStandardGamepadButtonJustPressed(id, pd.button) {
				dir = pd.dir
			}
		}
	}
	return dir
}
