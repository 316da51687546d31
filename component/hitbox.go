package component

import (
	"github.com/Steeze/arcade-game/prefabs"
	"github.com/jakecoffman/cp"
)

// Hitbox is the visible part of a sprite, relative to the sprite's top-left
// corner. Sprites carry transparent padding, so the hitbox is smaller than
// the image.
type Hitbox struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

func HitboxFromSpec(s prefabs.HitboxSpec) Hitbox {
	return Hitbox{OffsetX: s.OffsetX, OffsetY: s.OffsetY, Width: s.Width, Height: s.Height}
}

// Body is anything with a position and a hitbox.
type Body interface {
	Position() (x, y float64)
	Hitbox() Hitbox
}

// Box returns the hitbox of a sprite drawn at (x, y) in screen space.
// Screen y grows downward, so B holds the top edge and T the bottom edge.
func Box(x, y float64, hb Hitbox) cp.BB {
	return cp.BB{
		L: x + hb.OffsetX,
		B: y + hb.OffsetY,
		R: x + hb.OffsetX + hb.Width,
		T: y + hb.OffsetY + hb.Height,
	}
}
