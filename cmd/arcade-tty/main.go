// Command arcade-tty plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/Steeze/arcade-game/assets"
	"github.com/Steeze/arcade-game/clock"
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/ecs"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/ecs/system"
	"github.com/Steeze/arcade-game/prefabs"
	"github.com/Steeze/arcade-game/sound"
	"github.com/gdamore/tcell/v2"
)

const (
	boardCols = 40
	boardRows = 24
)

func main() {
	seed := flag.Int64("seed", 0, "enemy spawn seed (0 = time based)")
	tuningPath := flag.String("tuning", "", "tuning yaml file (default: prefabs/tuning.yaml or the embedded copy)")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	mute := flag.Bool("mute", false, "disable sound cues")
	fps := flag.Int("fps", 30, "frames per second")
	assetTimeout := flag.Duration("asset-timeout", 3*time.Second, "start even if sprites are still loading after this long")
	logPath := flag.String("log", "", "write logs to this file (logs are discarded otherwise)")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	tuning, err := prefabs.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	var sounds sound.Player = sound.Nop{}
	if !*mute {
		sp, err := newSpeakerPlayer()
		if err != nil {
			log.Printf("[sound] disabled: %v", err)
		} else {
			defer sp.Close()
			sounds = sp
		}
	}

	var reloader *prefabs.TuningReloader
	if *watch {
		reloader, err = prefabs.NewTuningReloader(*tuningPath)
		if err != nil {
			log.Printf("[tuning] watch disabled: %v", err)
		} else {
			defer reloader.Close()
		}
	}

	if err := run(context.Background(), screen, tuning, options{
		seed:         *seed,
		frame:        time.Second / time.Duration(max(*fps, 1)),
		assetTimeout: *assetTimeout,
		sounds:       sounds,
		reloader:     reloader,
	}); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("run: %v", err)
	}
}

type options struct {
	seed         int64
	frame        time.Duration
	assetTimeout time.Duration
	sounds       sound.Player
	reloader     *prefabs.TuningReloader
}

// run plays until a quit key is pressed or ctx ends.
func run(ctx context.Context, screen tcell.Screen, tuning *prefabs.TuningSpec, opts options) error {
	images := render.NewProvider(assets.Load)
	state := ecs.NewGameState(tuning, opts.seed)

	waitCtx, cancelWait := context.WithTimeout(ctx, opts.assetTimeout)
	err := images.Load(state.SpriteKeys()...).Wait(waitCtx)
	cancelWait()
	if err != nil {
		log.Printf("[assets] %v", err)
	}

	status := &statusLine{}
	state.Score.Attach(status)
	state.Score.Attach(component.LogSink{})

	ctx, quit := context.WithCancel(ctx)
	defer quit()
	go readInput(screen, state.Player, quit)

	cv := newCanvas(boardCols, boardRows, float64(tuning.Screen.Width), float64(tuning.Screen.Height))
	loop := ecs.NewLoop(state, clock.NewSystem(), system.Default()...)
	return loop.Run(ctx, opts.frame, func(l *ecs.Loop) {
		sound.PlayEvents(opts.sounds, l.Events().Drain())
		if opts.reloader != nil {
			if t, ok := opts.reloader.Poll(); ok {
				l.ApplyTuning(t)
			}
		}
		cv.Clear()
		l.Render(cv, images)
		cv.Flush(screen)
		status.Draw(screen, boardRows)
		screen.Show()
	})
}
