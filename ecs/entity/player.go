package entity

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/prefabs"
)

// Player is the sprite crossing the board. Input is buffered in a single
// slot and applied on the next Update.
type Player struct {
	X, Y   float64
	Speed  float64
	Sprite string

	// VerticalTrim shortens the vertical step: up/down move Speed-VerticalTrim.
	VerticalTrim float64
	StartX       float64
	StartY       float64
	Bounds       prefabs.BoundsSpec
	// GoalY is the row the player must pass (y < GoalY) to finish a crossing.
	GoalY float64

	hitbox component.Hitbox
	input  component.InputSlot
}

func NewPlayer(spec prefabs.PlayerSpec) *Player {
	p := &Player{}
	p.Configure(spec)
	p.Reset()
	return p
}

// Configure applies spec to the player without moving it.
func (p *Player) Configure(spec prefabs.PlayerSpec) {
	p.Speed = spec.Speed
	p.Sprite = spec.Sprite.Image
	p.VerticalTrim = spec.VerticalTrim
	p.StartX = spec.Start.X
	p.StartY = spec.Start.Y
	p.Bounds = spec.Bounds
	p.GoalY = spec.GoalY
	p.hitbox = component.HitboxFromSpec(spec.Hitbox)
}

// HandleInput records d as the move for the next Update. Unrecognized
// directions are ignored. Safe to call from an input goroutine.
func (p *Player) HandleInput(d component.Direction) {
	p.input.Set(d)
}

// Update applies the pending move, if any, clamps the player to the board
// and reports whether the goal row was reached.
func (p *Player) Update() bool {
	switch p.input.Take() {
	case component.DirLeft:
		p.X -= p.Speed
	case component.DirRight:
		p.X += p.Speed
	case component.DirUp:
		p.Y -= p.verticalStep()
	case component.DirDown:
		p.Y += p.verticalStep()
	}
	p.clamp()
	return p.Y < p.GoalY
}

// Reset puts the player back on the start cell and drops pending input.
func (p *Player) Reset() {
	p.X = p.StartX
	p.Y = p.StartY
	p.input.Clear()
}

func (p *Player) Render(s render.Surface, images render.Images) {
	render.DrawSprite(s, images, p.Sprite, p.X, p.Y)
}

func (p *Player) Position() (float64, float64) { return p.X, p.Y }

func (p *Player) Hitbox() component.Hitbox { return p.hitbox }

func (p *Player) verticalStep() float64 {
	return p.Speed - p.VerticalTrim
}

func (p *Player) clamp() {
	p.X = min(max(p.X, p.Bounds.MinX), p.Bounds.MaxX)
	p.Y = min(max(p.Y, p.Bounds.MinY), p.Bounds.MaxY)
}
