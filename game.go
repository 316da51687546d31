package main

import (
	"fmt"
	"image/color"
	"log"
	"sync/atomic"
	"time"

	"github.com/Steeze/arcade-game/clock"
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/ecs/system"
	"github.com/Steeze/arcade-game/prefabs"
	"github.com/Steeze/arcade-game/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Game struct {
	frames int
	debug  bool

	width, height int

	loop     *ecs.Loop
	images   *render.Provider
	cache    *imageCache
	hud      *HUD
	sounds   sound.Player
	reloader *prefabs.TuningReloader

	ready    atomic.Bool
	deadline time.Time
}

type GameOptions struct {
	Seed         int64
	Debug        bool
	AssetTimeout time.Duration
	Sounds       sound.Player
	Reloader     *prefabs.TuningReloader
}

func NewGame(tuning *prefabs.TuningSpec, images *render.Provider, opts GameOptions) *Game {
	state := ecs.NewGameState(tuning, opts.Seed)
	g := &Game{
		debug:    opts.Debug,
		width:    tuning.Screen.Width,
		height:   tuning.Screen.Height,
		loop:     ecs.NewLoop(state, clock.NewSystem(), system.Default()...),
		images:   images,
		cache:    newImageCache(),
		hud:      NewHUD(tuning.HUD),
		sounds:   opts.Sounds,
		reloader: opts.Reloader,
		deadline: time.Now().Add(opts.AssetTimeout),
	}
	if g.sounds == nil {
		g.sounds = sound.Nop{}
	}
	state.Score.Attach(g.hud)
	if opts.Debug {
		state.Score.Attach(component.LogSink{})
	}

	batch := images.Load(state.SpriteKeys()...)
	go func() {
		<-batch.Done()
		if err := batch.Err(); err != nil {
			log.Printf("[assets] %v", err)
		}
	}()
	images.OnReady(func() { g.ready.Store(true) })
	return g
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.loop.Running() {
		switch {
		case g.ready.Load():
			g.loop.Start()
		case time.Now().After(g.deadline):
			log.Printf("[assets] not ready after timeout, starting anyway")
			g.loop.Start()
		default:
			return nil
		}
	}

	if g.reloader != nil {
		if t, ok := g.reloader.Poll(); ok {
			g.loop.ApplyTuning(t)
		}
	}

	if d := pollDirection(); d != component.DirNone {
		g.loop.GameState().Player.HandleInput(d)
	}

	g.loop.Tick()
	sound.PlayEvents(g.sounds, g.loop.Events().Drain())
	g.hud.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.loop.Running() {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	g.loop.Render(screenSurface{screen: screen, cache: g.cache}, g.images)
	g.hud.Draw(screen)

	if g.debug {
		g.drawHitboxes(screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 0, g.height-16)
	}
}

func (g *Game) drawHitboxes(screen *ebiten.Image) {
	state := g.loop.GameState()
	stroke := func(b component.Body, c color.Color) {
		x, y := b.Position()
		bb := component.Box(x, y, b.Hitbox())
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1.0, c, false)
	}
	for _, e := range state.Enemies {
		stroke(e, color.RGBA{R: 255, A: 200})
	}
	stroke(state.Player, color.RGBA{G: 255, A: 200})
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
