package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

// Generate draws the placeholder for a known sprite key.
func Generate(key string) (image.Image, error) {
	switch key {
	case WaterBlock:
		return tile(colornames.Steelblue, colornames.Midnightblue), nil
	case StoneBlock:
		return tile(colornames.Darkgray, colornames.Dimgray), nil
	case GrassBlock:
		return tile(colornames.Yellowgreen, colornames.Darkolivegreen), nil
	case EnemyBug:
		return bug(), nil
	case CharBoy:
		return boy(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, key)
}

func blank() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))
}

// tile is a block with a top face and a darker front face; the top 50 rows
// stay transparent so rows overlap like stacked blocks.
func tile(top, side color.Color) image.Image {
	img := blank()
	fillRect(img, image.Rect(0, 50, SpriteWidth, 133), top)
	fillRect(img, image.Rect(0, 133, SpriteWidth, SpriteHeight), side)
	return img
}

// bug keeps its opaque pixels inside the enemy hitbox (x 11..88, y 90..135).
func bug() image.Image {
	img := blank()
	fillEllipse(img, 50, 113, 37, 21, colornames.Crimson)
	fillEllipse(img, 79, 108, 8, 8, colornames.Darkred)
	fillEllipse(img, 82, 105, 2, 2, colornames.White)
	return img
}

// boy keeps its opaque pixels between rows 63 and 139.
func boy() image.Image {
	img := blank()
	fillEllipse(img, 50, 80, 16, 16, colornames.Peachpuff)
	fillRect(img, image.Rect(30, 96, 71, 126), colornames.Royalblue)
	fillRect(img, image.Rect(34, 126, 48, 139), colornames.Saddlebrown)
	fillRect(img, image.Rect(53, 126, 67, 139), colornames.Saddlebrown)
	return img
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func fillEllipse(img draw.Image, cx, cy, rx, ry int, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 && image.Pt(x, y).In(img.Bounds()) {
				img.Set(x, y, c)
			}
		}
	}
}
