package main

import (
	"flag"
	"log"
	"time"

	"github.com/Steeze/arcade-game/assets"
	"github.com/Steeze/arcade-game/ecs/render"
	"github.com/Steeze/arcade-game/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "enemy spawn seed (0 = time based)")
	tuningPath := flag.String("tuning", "", "tuning yaml file (default: prefabs/tuning.yaml or the embedded copy)")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	mute := flag.Bool("mute", false, "disable sound cues")
	assetTimeout := flag.Duration("asset-timeout", 3*time.Second, "start even if sprites are still loading after this long")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	tuning, err := prefabs.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(tuning.Screen.Width, tuning.Screen.Height)
	ebiten.SetWindowTitle(tuning.Name)

	opts := GameOptions{
		Seed:         *seed,
		Debug:        *debug,
		AssetTimeout: *assetTimeout,
	}
	if !*mute {
		cues, err := newCuePlayer()
		if err != nil {
			log.Printf("[sound] disabled: %v", err)
		} else {
			opts.Sounds = cues
		}
	}
	if *watch {
		r, err := prefabs.NewTuningReloader(*tuningPath)
		if err != nil {
			log.Printf("[tuning] watch disabled: %v", err)
		} else {
			defer r.Close()
			opts.Reloader = r
		}
	}

	game := NewGame(tuning, render.NewProvider(assets.Load), opts)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
