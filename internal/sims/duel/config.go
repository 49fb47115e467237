package duel

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the rule thresholds and seeding densities for the duel sim.
// The ten integer fields parameterize the transition rules; the two
// fractional fields only affect seeded Reset.
type Params struct {
	// Birth is the effective pressure a species needs to colonize an
	// empty cell.
	Birth int `yaml:"birth"`
	// SurviveMin/SurviveMax bound the same-species neighbor count an
	// occupied cell needs to survive.
	SurviveMin int `yaml:"smin"`
	SurviveMax int `yaml:"smax"`
	// Overcrowd kills an occupied cell when either species' raw neighbor
	// count reaches it.
	Overcrowd int `yaml:"over"`
	// ContestMin and ContestMargin gate when a cell flips to Contested
	// (and how contested cells resolve): the challenger needs pressure of
	// at least ContestMin and an advantage of at least ContestMargin.
	ContestMin    int `yaml:"cmin"`
	ContestMargin int `yaml:"marg"`
	// InfectStrong is the diseased neighbor count that always infects.
	// InfectWeak infects only isolated cells; zero disables the weak path.
	InfectStrong int `yaml:"istr"`
	InfectWeak   int `yaml:"iweak"`
	// DiseaseTTL is how many generations a diseased cell lingers before
	// dying off; ContestTTL the same for unresolved contested cells.
	DiseaseTTL int `yaml:"tau"`
	ContestTTL int `yaml:"ydec"`
	// SeedDensity is the fraction of cells occupied by a species after a
	// seeded Reset; SeedDisease the fraction seeded as diseased.
	SeedDensity float64 `yaml:"density"`
	SeedDisease float64 `yaml:"gdensity"`
}

// Config controls the duel simulation dimensions and rules.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// CellSize is a display hint for renderers; the core never reads it.
	CellSize int `yaml:"cell_size"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		CellSize: 3,
		Seed:     1337,
		Params: Params{
			Birth:         3,
			SurviveMin:    2,
			SurviveMax:    3,
			Overcrowd:     7,
			ContestMin:    3,
			ContestMargin: 2,
			InfectStrong:  3,
			InfectWeak:    2,
			DiseaseTTL:    4,
			ContestTTL:    4,
			SeedDensity:   0.33,
			SeedDisease:   0.01,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	intKeys := map[string]*int{
		"birth": &c.Params.Birth,
		"smin":  &c.Params.SurviveMin,
		"smax":  &c.Params.SurviveMax,
		"over":  &c.Params.Overcrowd,
		"cmin":  &c.Params.ContestMin,
		"marg":  &c.Params.ContestMargin,
		"istr":  &c.Params.InfectStrong,
		"iweak": &c.Params.InfectWeak,
		"tau":   &c.Params.DiseaseTTL,
		"ydec":  &c.Params.ContestTTL,
	}
	for key, dst := range intKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	floatKeys := map[string]*float64{
		"density":  &c.Params.SeedDensity,
		"gdensity": &c.Params.SeedDisease,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = clamp01(parsed)
			}
		}
	}
	return c
}

// LoadConfig reads a YAML configuration file. Missing fields keep their
// defaults; densities are clamped into [0, 1].
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("duel: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("duel: parse config %s: %w", path, err)
	}
	c.Params.SeedDensity = clamp01(c.Params.SeedDensity)
	c.Params.SeedDisease = clamp01(c.Params.SeedDisease)
	return c, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
