//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"wireworld/internal/core"
	"wireworld/internal/render"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

var monochrome = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	log     zerolog.Logger

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	gen      int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, log zerolog.Logger) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	palette := monochrome
	if pp, ok := sim.(paletteProvider); ok {
		palette = pp.Palette()
	}
	return &Game{
		sim:     sim,
		painter: gp,
		palette: palette,
		log:     log,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.gen = 0
	g.log.Info().Msg("reset")
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug().Bool("paused", g.paused).Int("generation", g.gen).Msg("toggle pause")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.gen++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
