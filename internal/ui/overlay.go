//go:build ebiten

package ui

import (
	"image/color"

	"duel-ca/internal/core"
	"duel-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type agePlaneProvider interface {
	DiseaseAges() []uint8
	ContestedAges() []uint8
}

// Overlay draws optional age heat-maps on top of the base simulation view.
type Overlay struct {
	sim   core.Sim
	scale int

	showDisease   bool
	showContested bool

	painter *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the heat-map layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDisease = !o.showDisease
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		o.showContested = !o.showContested
	}
}

// Draw renders the enabled heat-maps onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showDisease && !o.showContested {
		return
	}
	provider, ok := o.sim.(agePlaneProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	if pw, ph := o.painter.Size(); pw != size.W || ph != size.H {
		o.painter = render.NewGridPainter(size.W, size.H)
	}

	if o.showDisease {
		o.painter.BlitHeat(screen, provider.DiseaseAges(), 8,
			color.RGBA{R: 255, G: 240, B: 80, A: 255}, scale)
	}
	if o.showContested {
		o.painter.BlitHeat(screen, provider.ContestedAges(), 8,
			color.RGBA{R: 255, G: 120, B: 40, A: 255}, scale)
	}
}
