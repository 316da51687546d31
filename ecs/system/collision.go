package system

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs"
)

// CollisionSystem tests the player against each enemy once per tick and
// applies the collision penalty on every hit.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(g *ecs.GameState, _ float64) {
	if g == nil || g.Player == nil {
		return
	}
	for _, e := range g.Enemies {
		if !component.Collides(g.Player, e) {
			continue
		}
		g.Score.ApplyCollision()
		score, level := g.Score.Snapshot()
		g.Events().Push(ecs.Event{
			Type: ecs.EventCollision,
			Data: ecs.ScoreChange{Score: score, Level: level},
		})
	}
}
