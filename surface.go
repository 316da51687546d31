package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageCache converts decoded images to GPU images once.
type imageCache struct {
	images map[image.Image]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{images: make(map[image.Image]*ebiten.Image)}
}

func (c *imageCache) get(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	if eimg, ok := c.images[img]; ok {
		return eimg
	}
	eimg := ebiten.NewImageFromImage(img)
	c.images[img] = eimg
	return eimg
}

// screenSurface draws onto the ebiten screen for one frame.
type screenSurface struct {
	screen *ebiten.Image
	cache  *imageCache
}

func (s screenSurface) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.screen.DrawImage(s.cache.get(img), op)
}
