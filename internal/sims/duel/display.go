package duel

import "image/color"

var duelPalette = []color.RGBA{
	Empty:     {R: 16, G: 16, B: 22, A: 255},
	SpeciesA:  {R: 72, G: 168, B: 86, A: 255},
	SpeciesB:  {R: 80, G: 120, B: 214, A: 255},
	Diseased:  {R: 190, G: 186, B: 60, A: 255},
	Contested: {R: 226, G: 120, B: 52, A: 255},
}

// Palette exposes the color palette used for rendering the duel world. The
// slice is indexed by Cell value.
func (w *World) Palette() []color.RGBA {
	return duelPalette
}
