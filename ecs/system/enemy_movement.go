package system

import "github.com/Steeze/arcade-game/ecs"

// EnemyMovementSystem moves every enemy along its lane.
type EnemyMovementSystem struct{}

func NewEnemyMovementSystem() *EnemyMovementSystem { return &EnemyMovementSystem{} }

func (s *EnemyMovementSystem) Update(g *ecs.GameState, dt float64) {
	if g == nil {
		return
	}
	for _, e := range g.Enemies {
		e.Update(dt)
	}
}
