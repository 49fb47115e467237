package duel

import (
	"strconv"

	"duel-ca/internal/core"
)

// Parameters returns an immutable snapshot of the current configuration for
// presentation. Mutating the snapshot has no effect on the world.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("cell_size", "Cell size", w.cfg.CellSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				intParam("birth", "Birth pressure", p.Birth),
				intParam("smin", "Survival min", p.SurviveMin),
				intParam("smax", "Survival max", p.SurviveMax),
				intParam("over", "Overcrowd limit", p.Overcrowd),
			},
		},
		{
			Name: "Infection",
			Params: []core.Parameter{
				intParam("istr", "Strong infection count", p.InfectStrong),
				intParam("iweak", "Weak infection count", p.InfectWeak),
				intParam("tau", "Disease lifetime", p.DiseaseTTL),
			},
		},
		{
			Name: "Contest",
			Params: []core.Parameter{
				intParam("cmin", "Contest pressure min", p.ContestMin),
				intParam("marg", "Contest margin", p.ContestMargin),
				intParam("ydec", "Contested lifetime", p.ContestTTL),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("density", "Species density", p.SeedDensity),
				floatParam("gdensity", "Disease density", p.SeedDisease),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	intCtl := func(key, label string, max float64) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeInt,
			Step: 1, Min: 0, Max: max, HasMin: true, HasMax: true,
		}
	}
	floatCtl := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		}
	}
	return []core.ParameterControl{
		intCtl("birth", "Birth pressure", 16),
		intCtl("smin", "Survival min", 8),
		intCtl("smax", "Survival max", 8),
		intCtl("over", "Overcrowd limit", 9),
		intCtl("cmin", "Contest pressure min", 16),
		intCtl("marg", "Contest margin", 16),
		intCtl("istr", "Strong infection count", 8),
		intCtl("iweak", "Weak infection count", 8),
		intCtl("tau", "Disease lifetime", 255),
		intCtl("ydec", "Contested lifetime", 255),
		floatCtl("density", "Species density"),
		floatCtl("gdensity", "Disease density"),
	}
}

// SetIntParameter updates an integer rule parameter, clamping negatives to
// zero. Returns false for unknown keys.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	switch key {
	case "birth":
		w.cfg.Params.Birth = value
	case "smin":
		w.cfg.Params.SurviveMin = value
	case "smax":
		w.cfg.Params.SurviveMax = value
	case "over":
		w.cfg.Params.Overcrowd = value
	case "cmin":
		w.cfg.Params.ContestMin = value
	case "marg":
		w.cfg.Params.ContestMargin = value
	case "istr":
		w.cfg.Params.InfectStrong = value
	case "iweak":
		w.cfg.Params.InfectWeak = value
	case "tau":
		w.cfg.Params.DiseaseTTL = value
	case "ydec":
		w.cfg.Params.ContestTTL = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a seeding density, clamped into [0, 1]. Returns
// false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	value = clamp01(value)
	switch key {
	case "density":
		w.cfg.Params.SeedDensity = value
	case "gdensity":
		w.cfg.Params.SeedDisease = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
