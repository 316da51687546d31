package system

import "github.com/Steeze/arcade-game/ecs"

// PlayerSystem applies the player's pending move and hands a finished
// crossing to the score controller.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Update(g *ecs.GameState, _ float64) {
	if g == nil || g.Player == nil {
		return
	}
	if !g.Player.Update() {
		return
	}
	g.Score.ApplyGoalReached()
	score, level := g.Score.Snapshot()
	g.Events().Push(ecs.Event{
		Type: ecs.EventGoalReached,
		Data: ecs.ScoreChange{Score: score, Level: level},
	})
}
