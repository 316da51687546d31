package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func tuningWithReward(t *testing.T, reward string) []byte {
	t.Helper()
	embedded, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		t.Fatalf("read embedded: %v", err)
	}
	return []byte(strings.Replace(string(embedded), "goal_reward: 10", "goal_reward: "+reward, 1))
}

func newReloader(t *testing.T, path string) *TuningReloader {
	t.Helper()
	r, err := NewTuningReloader(path)
	if err != nil {
		t.Fatalf("new reloader: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func waitReload(t *testing.T, r *TuningReloader, timeout time.Duration) *TuningSpec {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if spec, ok := r.Poll(); ok {
			return spec
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no reload within %v", timeout)
	return nil
}

func TestReloaderWaitsForWritesToSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, tuningWithReward(t, "10"), 0o644); err != nil {
		t.Fatalf("seed tuning: %v", err)
	}
	r := newReloader(t, path)

	// A save that truncates first and fills the file a frame later.
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := r.Poll(); ok {
		t.Fatalf("reloaded a half-written file")
	}
	if err := os.WriteFile(path, tuningWithReward(t, "25"), 0o644); err != nil {
		t.Fatalf("write edit: %v", err)
	}

	spec := waitReload(t, r, 2*time.Second)
	if spec.Scoring.GoalReward != 25 {
		t.Fatalf("expected goal reward 25, got %d", spec.Scoring.GoalReward)
	}

	time.Sleep(3 * debounce)
	if _, ok := r.Poll(); ok {
		t.Fatalf("one save should reload once")
	}
}

func TestReloaderKeepsTuningWhenOverrideIsMissing(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	target := filepath.Join(dir, TuningFile)
	r := newReloader(t, "")

	if err := os.WriteFile(target, tuningWithReward(t, "25"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if spec := waitReload(t, r, 2*time.Second); spec.Scoring.GoalReward != 25 {
		t.Fatalf("expected override reward 25, got %d", spec.Scoring.GoalReward)
	}

	// Rename-style save: the old file moves away before the new one lands.
	if err := os.Rename(target, target+".bak"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	time.Sleep(3 * debounce)
	if spec, ok := r.Poll(); ok {
		t.Fatalf("missing override reloaded embedded tuning (reward %d)", spec.Scoring.GoalReward)
	}

	if err := os.WriteFile(target, tuningWithReward(t, "30"), 0o644); err != nil {
		t.Fatalf("write replacement: %v", err)
	}
	if spec := waitReload(t, r, 2*time.Second); spec.Scoring.GoalReward != 30 {
		t.Fatalf("expected replacement reward 30, got %d", spec.Scoring.GoalReward)
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	path := filepath.Join(dir, "burst.yaml")
	for i := range 5 {
		if err := os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0o644); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "burst.yaml" {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for burst")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("burst reported twice, second for %s", name)
	case <-time.After(3 * debounce):
	}
}
