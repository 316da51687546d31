package ecs

import (
	"context"
	"time"

	"github.com/Steeze/arcade-game/clock"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/prefabs"
)

// LoopState is the lifecycle of a Loop.
type LoopState int

const (
	StateUninitialized LoopState = iota
	StateRunning
)

func (s LoopState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Loop drives a GameState one tick at a time. It does nothing until Start;
// once running it stays running for the rest of the session.
type Loop struct {
	state     *GameState
	clock     clock.Clock
	scheduler *Scheduler
	status    LoopState
}

// NewLoop runs systems in the given order on every tick.
func NewLoop(state *GameState, c clock.Clock, systems ...System) *Loop {
	return &Loop{
		state:     state,
		clock:     c,
		scheduler: NewScheduler(systems...),
	}
}

// Start moves the loop to StateRunning. The clock is reset so the first
// tick does not see the time spent loading. Later calls are no-ops.
func (l *Loop) Start() {
	if l.status == StateRunning {
		return
	}
	if r, ok := l.clock.(clock.Resetter); ok {
		r.Reset()
	}
	l.status = StateRunning
}

func (l *Loop) State() LoopState { return l.status }

func (l *Loop) Running() bool { return l.status == StateRunning }

// GameState returns the state the loop drives.
func (l *Loop) GameState() *GameState { return l.state }

// Tick advances the game by one clock delta. Events from the previous tick
// are dropped first. Ticks before Start are ignored.
func (l *Loop) Tick() {
	if l.status != StateRunning {
		return
	}
	l.state.events.flush()
	l.scheduler.Update(l.state, l.clock.Delta())
}

// Render draws the current state. It is safe to call before Start.
func (l *Loop) Render(s render.Surface, images render.Images) {
	if s == nil {
		return
	}
	l.state.Render(s, images)
}

// Events returns the queue filled by the last tick.
func (l *Loop) Events() *EventQueue {
	return l.state.Events()
}

// ApplyTuning applies reloaded constants to the running game.
func (l *Loop) ApplyTuning(t *prefabs.TuningSpec) {
	if t == nil {
		return
	}
	l.state.ApplyTuning(t)
}

// Run starts the loop and ticks it every frame period, calling present after
// each tick, until ctx is done. Cancellation is only observed between frames.
func (l *Loop) Run(ctx context.Context, frame time.Duration, present func(*Loop)) error {
	l.Start()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Tick()
			if present != nil {
				present(l)
			}
		}
	}
}
