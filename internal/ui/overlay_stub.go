//go:build !ebiten

package ui

import "duel-ca/internal/core"

// Overlay is a headless placeholder; the real overlay requires the ebiten tag.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
