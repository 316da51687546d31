package component

import (
	"bytes"
	"log"
	"testing"
)

type resetCounter struct{ n int }

func (r *resetCounter) Reset() { r.n++ }

type spawnRecorder struct{ counts []int }

func (s *spawnRecorder) Regenerate(count int) { s.counts = append(s.counts, count) }

func newScoreLevel() (*ScoreLevel, *resetCounter, *spawnRecorder) {
	r := &resetCounter{}
	sp := &spawnRecorder{}
	return NewScoreLevel(ScoreRules{CollisionPenalty: 1, GoalReward: 10}, r, sp), r, sp
}

func TestScoreLevelStartsAtLevelOne(t *testing.T) {
	s, _, _ := newScoreLevel()
	if score, level := s.Snapshot(); score != 0 || level != 1 {
		t.Fatalf("expected (0, 1), got (%d, %d)", score, level)
	}
}

func TestScoreLevelSequences(t *testing.T) {
	cases := []struct {
		name      string
		ops       string // c = collision, g = goal
		wantScore int
		wantLevel int
		wantReset int
		wantSpawn []int
	}{
		{"collision_at_zero_floors", "c", 0, 1, 1, nil},
		{"goal", "g", 10, 2, 1, []int{2}},
		{"goal_then_collision", "gc", 9, 2, 2, []int{2}},
		{"many_collisions_floor", "gcccccccccccc", 0, 2, 13, []int{2}},
		{"three_goals", "ggg", 30, 4, 3, []int{2, 3, 4}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, r, sp := newScoreLevel()
			for _, op := range c.ops {
				switch op {
				case 'c':
					s.ApplyCollision()
				case 'g':
					s.ApplyGoalReached()
				}
				if s.Score() < 0 || s.Level() < 1 {
					t.Fatalf("invariant broken after %q: score=%d level=%d", op, s.Score(), s.Level())
				}
			}
			if s.Score() != c.wantScore || s.Level() != c.wantLevel {
				t.Fatalf("expected (%d, %d), got (%d, %d)", c.wantScore, c.wantLevel, s.Score(), s.Level())
			}
			if r.n != c.wantReset {
				t.Fatalf("expected %d resets, got %d", c.wantReset, r.n)
			}
			if len(sp.counts) != len(c.wantSpawn) {
				t.Fatalf("expected spawns %v, got %v", c.wantSpawn, sp.counts)
			}
			for i := range sp.counts {
				if sp.counts[i] != c.wantSpawn[i] {
					t.Fatalf("expected spawns %v, got %v", c.wantSpawn, sp.counts)
				}
			}
		})
	}
}

func TestScoreLevelSinks(t *testing.T) {
	s, _, _ := newScoreLevel()
	var reports [][2]int
	s.Attach(SinkFunc(func(score, level int) {
		reports = append(reports, [2]int{score, level})
	}))
	s.ApplyGoalReached()
	s.ApplyCollision()

	want := [][2]int{{0, 1}, {10, 2}, {9, 2}}
	if len(reports) != len(want) {
		t.Fatalf("expected %v, got %v", want, reports)
	}
	for i := range want {
		if reports[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, reports)
		}
	}
}

func TestScoreLevelSetRules(t *testing.T) {
	s, _, _ := newScoreLevel()
	s.SetRules(ScoreRules{CollisionPenalty: 3, GoalReward: 5})
	s.ApplyGoalReached()
	s.ApplyCollision()
	if s.Score() != 2 || s.Level() != 2 {
		t.Fatalf("expected (2, 2), got (%d, %d)", s.Score(), s.Level())
	}
}

func TestScoreLevelNilSafe(t *testing.T) {
	var s *ScoreLevel
	s.ApplyCollision()
	s.ApplyGoalReached()
	if score, level := s.Snapshot(); score != 0 || level != 1 {
		t.Fatalf("nil controller should read as (0, 1), got (%d, %d)", score, level)
	}

	bare := NewScoreLevel(ScoreRules{CollisionPenalty: 1, GoalReward: 10}, nil, nil)
	bare.ApplyGoalReached()
	if bare.Level() != 2 {
		t.Fatalf("controller without collaborators should still count levels")
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewScoreLevel(ScoreRules{CollisionPenalty: 1, GoalReward: 10}, nil, nil)
	s.Attach(LogSink{Logger: log.New(&buf, "", 0)})
	s.ApplyGoalReached()

	want := "[score] Score: 0  Level: 1\n[score] Score: 10  Level: 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
