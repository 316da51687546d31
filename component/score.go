package component

import "github.com/Steeze/arcade-game/prefabs"

// Sink receives score and level updates for display.
type Sink interface {
	Report(score, level int)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(score, level int)

func (f SinkFunc) Report(score, level int) { f(score, level) }

// Resettable is implemented by entities that can return to their start
// position.
type Resettable interface {
	Reset()
}

// Spawner replaces the whole enemy set with count fresh enemies.
type Spawner interface {
	Regenerate(count int)
}

// ScoreRules are the scoring deltas.
type ScoreRules struct {
	CollisionPenalty int
	GoalReward       int
}

func ScoreRulesFromSpec(s prefabs.ScoringSpec) ScoreRules {
	return ScoreRules{CollisionPenalty: s.CollisionPenalty, GoalReward: s.GoalReward}
}

// ScoreLevel tracks score and level and drives the transitions that follow
// a collision or a successful crossing. Score never drops below 0 and level
// never below 1.
type ScoreLevel struct {
	score int
	level int
	rules ScoreRules

	player  Resettable
	spawner Spawner
	sinks   []Sink
}

// NewScoreLevel starts at score 0, level 1. player and spawner may be nil.
func NewScoreLevel(rules ScoreRules, player Resettable, spawner Spawner) *ScoreLevel {
	return &ScoreLevel{
		level:   1,
		rules:   rules,
		player:  player,
		spawner: spawner,
	}
}

// Attach adds a display sink and reports the current values to it.
func (s *ScoreLevel) Attach(sink Sink) {
	if s == nil || sink == nil {
		return
	}
	s.sinks = append(s.sinks, sink)
	sink.Report(s.score, s.level)
}

// SetRules swaps the scoring deltas; score and level are kept.
func (s *ScoreLevel) SetRules(rules ScoreRules) {
	if s == nil {
		return
	}
	s.rules = rules
}

// ApplyCollision takes the collision penalty and sends the player back to
// the start. Level is unchanged.
func (s *ScoreLevel) ApplyCollision() {
	if s == nil {
		return
	}
	s.score -= s.rules.CollisionPenalty
	s.normalize()
	if s.player != nil {
		s.player.Reset()
	}
	s.publish()
}

// ApplyGoalReached awards the crossing, advances the level, resets the
// player and regenerates one enemy per level.
func (s *ScoreLevel) ApplyGoalReached() {
	if s == nil {
		return
	}
	s.score += s.rules.GoalReward
	s.level++
	s.normalize()
	if s.player != nil {
		s.player.Reset()
	}
	if s.spawner != nil {
		s.spawner.Regenerate(s.level)
	}
	s.publish()
}

func (s *ScoreLevel) Score() int {
	if s == nil {
		return 0
	}
	return s.score
}

func (s *ScoreLevel) Level() int {
	if s == nil {
		return 1
	}
	return s.level
}

// Snapshot returns score and level together.
func (s *ScoreLevel) Snapshot() (score, level int) {
	return s.Score(), s.Level()
}

func (s *ScoreLevel) normalize() {
	s.score = max(0, s.score)
	s.level = max(1, s.level)
}

func (s *ScoreLevel) publish() {
	for _, sink := range s.sinks {
		sink.Report(s.score, s.level)
	}
}
