//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"duel-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the simulation view and
// lets the arrow keys adjust the rule parameters between generations.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls    []hudControl
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

type hudControl struct {
	control core.ParameterControl
	value   string
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// zero width disables the panel entirely.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter values and handles HUD input.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	h.refreshValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := 16
	text.Draw(h.panel, "Rules (arrows adjust)", face, 8, y, color.White)
	y += 18
	for i, ctl := range h.controls {
		line := fmt.Sprintf("%s: %s", ctl.control.Label, ctl.value)
		col := color.Color(color.RGBA{R: 170, G: 170, B: 180, A: 255})
		if i == h.selected {
			col = color.White
			line = "> " + line
		} else {
			line = "  " + line
		}
		text.Draw(h.panel, line, face, 8, y, col)
		y += 14
	}
	y += 10
	text.Draw(h.panel, "space pause  n step", face, 8, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
	y += 14
	text.Draw(h.panel, "d/y age overlays", face, 8, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})
	y += 14
	text.Draw(h.panel, "0-4 brush  click paint", face, 8, y, color.RGBA{R: 120, G: 120, B: 130, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

func (h *HUD) refreshValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	byKey := map[string]string{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			byKey[param.Key] = param.Value
		}
	}
	for i := range h.controls {
		if v, ok := byKey[h.controls[i].control.Key]; ok {
			h.controls[i].value = v
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	dir := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dir = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dir = 1
	}
	if dir == 0 {
		return
	}
	h.adjust(h.controls[h.selected], dir)
}

func (h *HUD) adjust(ctl hudControl, dir int) {
	c := ctl.control
	switch c.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		cur, err := strconv.Atoi(ctl.value)
		if err != nil {
			return
		}
		next := cur + dir*int(c.Step)
		if c.HasMin && float64(next) < c.Min {
			next = int(c.Min)
		}
		if c.HasMax && float64(next) > c.Max {
			next = int(c.Max)
		}
		h.intSetter.SetIntParameter(c.Key, next)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		cur, err := strconv.ParseFloat(ctl.value, 64)
		if err != nil {
			return
		}
		next := cur + float64(dir)*c.Step
		if c.HasMin && next < c.Min {
			next = c.Min
		}
		if c.HasMax && next > c.Max {
			next = c.Max
		}
		h.floatSetter.SetFloatParameter(c.Key, next)
	}
}
