//go:build !ebiten

package ui

import "duel-ca/internal/core"

// HUD is a headless placeholder; the real panel requires the ebiten tag.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}

// Width reports zero in the headless build.
func (h *HUD) Width() int { return 0 }
