package main

import (
	"image/color"

	"github.com/Steeze/arcade-game/component"
	"github.com/Steeze/arcade-game/prefabs"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD is the score and level bar in the top-left corner. It is a score
// sink: every Report replaces the label.
type HUD struct {
	ui    *ebitenui.UI
	label *widget.Text
}

func NewHUD(spec prefabs.HUDSpec) *HUD {
	panelImg := imageui.NewNineSliceColor(spec.Background.ColorOr(color.NRGBA{A: 0x99}))

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text(component.FormatScore(0, 1), &face, spec.Color.ColorOr(color.White)),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &HUD{ui: &ebitenui.UI{Container: root}, label: label}
}

func (h *HUD) Report(score, level int) {
	h.label.Label = component.FormatScore(score, level)
}

func (h *HUD) Update() { h.ui.Update() }

func (h *HUD) Draw(screen *ebiten.Image) { h.ui.Draw(screen) }
