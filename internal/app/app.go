//go:build ebiten

package app

import (
	"image/color"
	"time"

	"duel-ca/internal/core"
	"duel-ca/internal/render"
	"duel-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type cellPainter interface {
	PaintCell(x, y int, v uint8)
}

type resizer interface {
	Resize(cols, rows, cellSize int, preserve bool) error
}

type clearer interface {
	Clear()
}

var fallbackPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface and wires the
// pointer-driven cell editing into it.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	brush    uint8
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps, hudWidth int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
		brush:   1,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation at the paced
// tick rate.
func (g *Game) Update() error {
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
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	g.handleBrushKeys()
	g.handleResizeKeys()
	g.handlePointer()

	g.overlay.Update()
	g.hud.Update()

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := g.pacer.Ticks(); i > 0; i-- {
			g.sim.Step()
		}
	}
	return nil
}

// Draw renders the current simulation state, overlays and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.sim.Size()
	if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	palette := fallbackPalette
	if p, ok := g.sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) handleBrushKeys() {
	brushKeys := [...]ebiten.Key{
		ebiten.KeyDigit0,
		ebiten.KeyDigit1,
		ebiten.KeyDigit2,
		ebiten.KeyDigit3,
		ebiten.KeyDigit4,
	}
	for v, key := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.brush = uint8(v)
		}
	}
}

func (g *Game) handleResizeKeys() {
	r, ok := g.sim.(resizer)
	if !ok {
		return
	}
	size := g.sim.Size()
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		_ = r.Resize(size.W+16, size.H+16, 0, true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		_ = r.Resize(size.W-16, size.H-16, 0, true)
	}
}

// handlePointer paints cells under the cursor. Coordinates are clamped here;
// the grid itself never clamps.
func (g *Game) handlePointer() {
	painter, ok := g.sim.(cellPainter)
	if !ok {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	px, py := ebiten.CursorPosition()
	size := g.sim.Size()
	x, y := px/g.scale, py/g.scale
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	v := g.brush
	if right {
		v = 0
	}
	painter.PaintCell(x, y, v)
}
