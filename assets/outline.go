package assets

import (
	"image"
	"image/color"
)

func opaque(img image.Image, x, y int) bool {
	_, _, _, a := img.At(x, y).RGBA()
	return a != 0
}

// Outline returns an image the size of src with c set on every transparent
// pixel that lies within thickness pixels of an opaque one.
func Outline(src image.Image, thickness int, c color.Color) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	near := func(x, y int) bool {
		for yy := max(y-thickness, b.Min.Y); yy <= min(y+thickness, b.Max.Y-1); yy++ {
			for xx := max(x-thickness, b.Min.X); xx <= min(x+thickness, b.Max.X-1); xx++ {
				if opaque(src, xx, yy) {
					return true
				}
			}
		}
		return false
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(src, x, y) && near(x, y) {
				out.Set(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return out
}

// Coverage reports the share of opaque pixels of src that fall inside r,
// in sprite coordinates. An empty sprite covers nothing.
func Coverage(src image.Image, r image.Rectangle) float64 {
	b := src.Bounds()
	var total, inside int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(src, x, y) {
				continue
			}
			total++
			if (image.Point{X: x - b.Min.X, Y: y - b.Min.Y}).In(r) {
				inside++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(inside) / float64(total)
}
