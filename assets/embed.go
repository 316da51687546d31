// Package assets resolves sprite keys to images: a PNG on disk when one is
// present, otherwise a generated placeholder of the same size and padding.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// Sprite keys shipped with the game.
const (
	EnemyBug   = "enemy-bug"
	CharBoy    = "char-boy"
	WaterBlock = "water-block"
	StoneBlock = "stone-block"
	GrassBlock = "grass-block"
)

// SpriteWidth and SpriteHeight are the dimensions of every sprite,
// transparent padding included.
const (
	SpriteWidth  = 101
	SpriteHeight = 171
)

// ErrUnknownSprite is returned for keys with neither a file nor a generator.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Dir is the on-disk directory searched for <key>.png overrides.
var Dir = "images"

// Keys lists every sprite key Load can always resolve.
func Keys() []string {
	return []string{StoneBlock, WaterBlock, GrassBlock, EnemyBug, CharBoy}
}

// Load returns the image for key. Keys may be bare ("char-boy") or written
// the way asset paths usually are ("images/char-boy.png").
func Load(key string) (image.Image, error) {
	name := Normalize(key)
	if name == "" {
		return nil, fmt.Errorf("assets: empty sprite key")
	}
	if img, err := loadFromDisk(name); err == nil {
		return img, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return Generate(name)
}

// Normalize strips directory and extension from a sprite key.
func Normalize(key string) string {
	s := strings.ReplaceAll(strings.TrimSpace(key), `\`, "/")
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		s = s[idx+1:]
	}
	return strings.TrimSuffix(s, filepath.Ext(s))
}

func loadFromDisk(name string) (image.Image, error) {
	b, err := os.ReadFile(filepath.Join(Dir, name+".png"))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}
