package assets

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func square(size int, r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, r, image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func TestOutline(t *testing.T) {
	src := square(7, image.Rect(2, 2, 5, 5))
	out := Outline(src, 1, color.NRGBA{R: 0xff, A: 0xff})

	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside_shape", 3, 3, false},
		{"edge_left", 1, 3, true},
		{"corner", 1, 1, true},
		{"two_away", 0, 3, false},
		{"edge_bottom", 3, 5, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, _, a := out.At(c.x, c.y).RGBA()
			if got := a != 0; got != c.want {
				t.Fatalf("outline at (%d, %d) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestCoverage(t *testing.T) {
	src := square(10, image.Rect(0, 0, 4, 5))
	cases := []struct {
		name string
		r    image.Rectangle
		want float64
	}{
		{"all", image.Rect(0, 0, 10, 10), 1},
		{"left_half", image.Rect(0, 0, 2, 10), 0.5},
		{"none", image.Rect(5, 5, 10, 10), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Coverage(src, c.r); got != c.want {
				t.Fatalf("coverage = %v, want %v", got, c.want)
			}
		})
	}
	if got := Coverage(image.NewNRGBA(image.Rect(0, 0, 3, 3)), image.Rect(0, 0, 3, 3)); got != 0 {
		t.Fatalf("empty sprite coverage = %v", got)
	}
}

func TestGeneratedBugFitsHitbox(t *testing.T) {
	img, err := Generate(EnemyBug)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := Coverage(img, image.Rect(11, 90, 88, 135)); got != 1 {
		t.Fatalf("expected the whole bug inside its hitbox, got %v", got)
	}
}
