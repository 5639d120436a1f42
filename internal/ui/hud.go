//go:build ebiten

package ui

import (
	"image/color"

	"termlife/internal/core"
	"termlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 14
	padding    = 6

	// PanelHeight is the height of the status strip drawn under the grid.
	PanelHeight = 4*lineHeight + 2*padding
)

var (
	panelColor = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	textColor  = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	hintColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// HUD renders the run counters in a strip below the grid.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	panel := ebiten.NewImage(width, PanelHeight)
	panel.Fill(panelColor)
	return &HUD{width: width, panel: panel}
}

// Draw paints the status strip at vertical offset top.
func (h *HUD) Draw(dst *ebiten.Image, top int, st core.Status, paused bool) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	dst.DrawImage(h.panel, op)

	face := basicfont.Face7x13
	y := top + padding + lineHeight - 3
	for _, line := range render.StatusLines(st) {
		text.Draw(dst, line, face, padding, y, textColor)
		y += lineHeight
	}

	hint := "space pause  n step  r reset  q quit"
	if paused {
		hint = "[paused] " + hint
	}
	text.Draw(dst, hint, face, padding, y, hintColor)
}
