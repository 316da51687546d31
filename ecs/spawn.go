package ecs

import (
	"math/rand"
	"time"

	"github.com/Steeze/arcade-game/ecs/entity"
	"github.com/Steeze/arcade-game/prefabs"
)

// EnemySpawner builds enemy sets with a seeded random source so a run can
// be replayed with the same -seed.
type EnemySpawner struct {
	rng  *rand.Rand
	spec prefabs.EnemySpec
}

// NewEnemySpawner seeds the spawner. A zero seed uses the current time.
func NewEnemySpawner(spec prefabs.EnemySpec, seed int64) *EnemySpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &EnemySpawner{rng: rand.New(rand.NewSource(seed)), spec: spec}
}

// Spawn returns count enemies, each on a random lane in [LaneMin, LaneMax)
// with a random speed in [SpeedMin, SpeedMax).
func (s *EnemySpawner) Spawn(count int) []*entity.Enemy {
	enemies := make([]*entity.Enemy, 0, max(count, 0))
	for range count {
		y := s.between(s.spec.LaneMin, s.spec.LaneMax)
		speed := s.between(s.spec.SpeedMin, s.spec.SpeedMax)
		enemies = append(enemies, entity.NewEnemy(s.spec, y, speed))
	}
	return enemies
}

// SetSpec changes the constants used for enemies spawned from now on.
func (s *EnemySpawner) SetSpec(spec prefabs.EnemySpec) {
	s.spec = spec
}

func (s *EnemySpawner) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
