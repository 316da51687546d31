package entity

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/prefabs"
)

// Enemy is a bug travelling right along one lane.
type Enemy struct {
	X, Y   float64
	Speed  float64
	Sprite string
	WrapX  float64

	hitbox component.Hitbox
}

// NewEnemy places an enemy at the spec's start column on lane y.
func NewEnemy(spec prefabs.EnemySpec, y, speed float64) *Enemy {
	return &Enemy{
		X:      spec.StartX,
		Y:      y,
		Speed:  speed,
		Sprite: spec.Sprite.Image,
		WrapX:  spec.WrapX,
		hitbox: component.HitboxFromSpec(spec.Hitbox),
	}
}

// Update moves the enemy by Speed*dt and wraps it back to x = 0 once it
// reaches the right edge.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt
	if e.X >= e.WrapX {
		e.X = 0
	}
}

func (e *Enemy) Render(s render.Surface, images render.Images) {
	render.DrawSprite(s, images, e.Sprite, e.X, e.Y)
}

func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

func (e *Enemy) Hitbox() component.Hitbox { return e.hitbox }

// SetHitbox replaces the enemy's hitbox.
func (e *Enemy) SetHitbox(hb component.Hitbox) { e.hitbox = hb }
