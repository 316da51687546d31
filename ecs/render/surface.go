package render

import "image"

// Surface is a 2D drawing target. DrawImage is the only primitive the game
// needs from it.
type Surface interface {
	DrawImage(img image.Image, x, y float64)
}

// Images looks up loaded images by key. A key that is still loading, or
// failed to load, reports false.
type Images interface {
	Get(key string) (image.Image, bool)
}

// DrawSprite draws the image registered under key at (x, y). An image that
// is not ready yet is an empty draw for this frame.
func DrawSprite(s Surface, images Images, key string, x, y float64) {
	if s == nil || images == nil || key == "" {
		return
	}
	img, ok := images.Get(key)
	if !ok {
		return
	}
	s.DrawImage(img, x, y)
}
