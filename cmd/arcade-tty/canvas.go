package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// halfBlock shows two vertically stacked pixels in one cell: the
// foreground paints the top half, the background the bottom half.
const halfBlock = '▀'

// canvas is a display surface that samples sprites down to terminal cells.
// Each cell holds two pixels, so the pixel grid is cols x 2*rows.
type canvas struct {
	cols, rows     int
	scaleX, scaleY float64
	background     color.NRGBA
	px             []color.NRGBA
}

// newCanvas maps a width x height board onto cols x rows cells.
func newCanvas(cols, rows int, width, height float64) *canvas {
	c := &canvas{
		cols:       cols,
		rows:       rows,
		scaleX:     width / float64(cols),
		scaleY:     height / float64(2*rows),
		background: color.NRGBA{A: 0xff},
		px:         make([]color.NRGBA, cols*2*rows),
	}
	c.Clear()
	return c
}

func (c *canvas) Clear() {
	for i := range c.px {
		c.px[i] = c.background
	}
}

// DrawImage samples img at the centre of every pixel it covers. Pixels that
// are mostly transparent leave what is underneath.
func (c *canvas) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	px0 := max(0, int(math.Floor(x/c.scaleX)))
	px1 := min(c.cols, int(math.Ceil((x+w)/c.scaleX)))
	py0 := max(0, int(math.Floor(y/c.scaleY)))
	py1 := min(2*c.rows, int(math.Ceil((y+h)/c.scaleY)))

	for py := py0; py < py1; py++ {
		sy := int(math.Floor((float64(py)+0.5)*c.scaleY-y)) + b.Min.Y
		if sy < b.Min.Y || sy >= b.Max.Y {
			continue
		}
		for px := px0; px < px1; px++ {
			sx := int(math.Floor((float64(px)+0.5)*c.scaleX-x)) + b.Min.X
			if sx < b.Min.X || sx >= b.Max.X {
				continue
			}
			col := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			if col.A < 0x80 {
				continue
			}
			col.A = 0xff
			c.px[py*c.cols+px] = col
		}
	}
}

func (c *canvas) at(px, py int) color.NRGBA {
	return c.px[py*c.cols+px]
}

// Flush writes the pixels to screen starting at the top-left cell.
func (c *canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(c.at(col, 2*row))).
				Background(cellColor(c.at(col, 2*row+1)))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func cellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
