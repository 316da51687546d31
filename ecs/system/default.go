package system

import "github.com/Steeze/arcade-game/ecs"

// Default returns the systems in tick order: enemies move, collisions
// resolve, then the player moves.
func Default() []ecs.System {
	return []ecs.System{
		NewEnemyMovementSystem(),
		NewCollisionSystem(),
		NewPlayerSystem(),
	}
}
