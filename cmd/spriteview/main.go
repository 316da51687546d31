// Command spriteview shows every sprite with its hitbox and an outline of
// its opaque pixels, for checking hitbox insets against the art.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/Steeze/arcade-game/assets"
	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	margin = 20
	labelH = 16
)

type sprite struct {
	key     string
	img     *ebiten.Image
	outline *ebiten.Image
	hitbox  *component.Hitbox
}

type viewer struct {
	sprites     []sprite
	showOutline bool
	showHitbox  bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.showOutline = !v.showOutline
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.showHitbox = !v.showHitbox
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x30, 0x30, 0x30, 0xff})
	for i, s := range v.sprites {
		x := float64(margin + i*(assets.SpriteWidth+margin))
		y := float64(margin + labelH)
		ebitenutil.DebugPrintAt(screen, s.key, int(x), margin)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(s.img, op)
		if v.showOutline {
			screen.DrawImage(s.outline, op)
		}
		if v.showHitbox && s.hitbox != nil {
			bb := component.Box(x, y, *s.hitbox)
			vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1.0, color.RGBA{R: 255, A: 255}, false)
		}
	}
	ebitenutil.DebugPrintAt(screen, "O: outline  H: hitbox  Esc: quit", margin, v.height()-margin)
}

func (v *viewer) width() int {
	return margin + len(v.sprites)*(assets.SpriteWidth+margin)
}

func (v *viewer) height() int {
	return 2*margin + labelH + assets.SpriteHeight + margin
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width(), v.height()
}

func loadSprites(tuning *prefabs.TuningSpec) []sprite {
	hitboxes := map[string]component.Hitbox{
		tuning.Player.Sprite.Image: component.HitboxFromSpec(tuning.Player.Hitbox),
		tuning.Enemy.Sprite.Image:  component.HitboxFromSpec(tuning.Enemy.Hitbox),
	}

	var out []sprite
	for _, key := range assets.Keys() {
		img, err := assets.Load(key)
		if err != nil {
			log.Printf("[spriteview] %s: %v", key, err)
			continue
		}
		s := sprite{
			key:     key,
			img:     ebiten.NewImageFromImage(img),
			outline: ebiten.NewImageFromImage(assets.Outline(img, 1, color.RGBA{R: 0xff, G: 0xff, A: 0xff})),
		}
		if hb, ok := hitboxes[key]; ok {
			s.hitbox = &hb
			r := image.Rect(int(hb.OffsetX), int(hb.OffsetY), int(hb.OffsetX+hb.Width), int(hb.OffsetY+hb.Height))
			log.Printf("[spriteview] %s: %.0f%% of opaque pixels inside hitbox", key, 100*assets.Coverage(img, r))
		}
		out = append(out, s)
	}
	return out
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning yaml file (default: prefabs/tuning.yaml or the embedded copy)")
	flag.Parse()

	tuning, err := prefabs.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	v := &viewer{sprites: loadSprites(tuning), showHitbox: true}
	ebiten.SetWindowSize(v.width(), v.height())
	ebiten.SetWindowTitle(fmt.Sprintf("%s sprites", tuning.Name))
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
