package ecs

import (
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs/entity"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/prefabs"
)

// Board is the static tile background.
type Board struct {
	Cols       int
	Rows       int
	CellWidth  float64
	CellHeight float64
	RowTiles   []string
}

func BoardFromSpec(spec prefabs.BoardSpec) Board {
	return Board{
		Cols:       spec.Cols,
		Rows:       spec.Rows,
		CellWidth:  spec.CellWidth,
		CellHeight: spec.CellHeight,
		RowTiles:   append([]string(nil), spec.RowTiles...),
	}
}

// Render draws every tile, row by row.
func (b Board) Render(s render.Surface, images render.Images) {
	for row := 0; row < b.Rows && row < len(b.RowTiles); row++ {
		for col := 0; col < b.Cols; col++ {
			render.DrawSprite(s, images, b.RowTiles[row], float64(col)*b.CellWidth, float64(row)*b.CellHeight)
		}
	}
}

// Keys returns the distinct tile sprite keys.
func (b Board) Keys() []string {
	seen := make(map[string]bool, len(b.RowTiles))
	var keys []string
	for _, k := range b.RowTiles {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// GameState is everything a tick reads or writes. It is owned by a Loop
// and handed to each system in turn.
type GameState struct {
	Player  *entity.Player
	Enemies []*entity.Enemy
	Score   *component.ScoreLevel
	Board   Board

	spawner *EnemySpawner
	events  EventQueue
}

// NewGameState builds the starting state: player on the start cell, score
// 0, level 1 and one enemy.
func NewGameState(tuning *prefabs.TuningSpec, seed int64) *GameState {
	g := &GameState{
		Player:  entity.NewPlayer(tuning.Player),
		Board:   BoardFromSpec(tuning.Board),
		spawner: NewEnemySpawner(tuning.Enemy, seed),
	}
	g.Score = component.NewScoreLevel(component.ScoreRulesFromSpec(tuning.Scoring), g.Player, g)
	g.Regenerate(g.Score.Level())
	return g
}

// Regenerate replaces the whole enemy set with count new enemies.
func (g *GameState) Regenerate(count int) {
	g.Enemies = g.spawner.Spawn(count)
}

// Events returns the queue systems push tick events to.
func (g *GameState) Events() *EventQueue {
	return &g.events
}

// SpriteKeys lists every image key the state can draw.
func (g *GameState) SpriteKeys() []string {
	keys := g.Board.Keys()
	keys = append(keys, g.spawner.spec.Sprite.Image, g.Player.Sprite)
	return keys
}

// Render draws the background, then enemies, then the player, so the player
// is always on top.
func (g *GameState) Render(s render.Surface, images render.Images) {
	g.Board.Render(s, images)
	for _, e := range g.Enemies {
		e.Render(s, images)
	}
	g.Player.Render(s, images)
}

// ApplyTuning swaps in new constants. Positions, score and level are kept;
// existing enemies pick up the new hitbox and wrap edge, new ones use every
// enemy constant.
func (g *GameState) ApplyTuning(t *prefabs.TuningSpec) {
	g.Player.Configure(t.Player)
	g.Board = BoardFromSpec(t.Board)
	g.Score.SetRules(component.ScoreRulesFromSpec(t.Scoring))
	g.spawner.SetSpec(t.Enemy)
	hb := component.HitboxFromSpec(t.Enemy.Hitbox)
	for _, e := range g.Enemies {
		e.SetHitbox(hb)
		e.WrapX = t.Enemy.WrapX
		e.Sprite = t.Enemy.Sprite.Image
	}
}
