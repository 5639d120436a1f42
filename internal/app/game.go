//go:build ebiten

package app

import (
	"sync/atomic"
	"time"

	"termlife/internal/core"
	"termlife/internal/render"
	"termlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	d       *Driver
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	stopped  atomic.Bool
}

// NewGame constructs a Game that advances d once per interval.
func NewGame(d *Driver, interval time.Duration, scale int) *Game {
	size := d.Grid().Size()
	return &Game{
		d:       d,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette),
		hud:     ui.NewHUD(size.W * scale),
		step:    core.NewFixedStep(interval),
		scale:   scale,
	}
}

// Stop makes the next Update end the game. Safe to call from any goroutine.
func (g *Game) Stop() { g.stopped.Store(true) }

// Update handles input and advances the simulation when the step timer fires.
func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.d.Reset()
	}

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.d.Advance()
		g.d.Evaluate()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.d.Grid().Cells(), g.scale)
	g.hud.Draw(screen, g.d.Grid().Size().H*g.scale, g.d.Status(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.d.Grid().Size()
	return s.W * g.scale, s.H*g.scale + ui.PanelHeight
}
