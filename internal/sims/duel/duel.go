package duel

import (
	"duel-ca/internal/core"
	pkgcore "duel-ca/pkg/core"
)

// World runs the two-species duel automaton: competitive birth/survival
// rules, an epidemic that culls dense or isolated populations, and a
// contested state that resolves border disputes over several generations.
type World struct {
	cfg  Config
	grid *Grid
}

// New returns a duel world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a duel world configured from the provided options.
// Fails with ErrInvalidDimension when the configured dimensions are not
// positive.
func NewWithConfig(cfg Config) (*World, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	return &World{cfg: cfg, grid: grid}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "duel" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.cols, H: w.grid.rows} }

// Cells exposes the current state buffer.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Grid exposes the grid for editing and overlays. Edits must not run
// concurrently with Step.
func (w *World) Grid() *Grid { return w.grid }

// DiseaseAges exposes the disease age plane for overlays.
func (w *World) DiseaseAges() []uint8 { return w.grid.DiseaseAges() }

// ContestedAges exposes the contested age plane for overlays.
func (w *World) ContestedAges() []uint8 { return w.grid.ContestedAges() }

// PaintCell writes a state from pointer-driven editing. Coordinates must be
// clamped by the caller; unknown state values are ignored.
func (w *World) PaintCell(x, y int, v uint8) {
	if v >= numCellStates {
		return
	}
	w.grid.Set(x, y, Cell(v))
}

// Clear empties the grid and zeroes both age planes.
func (w *World) Clear() { w.grid.Clear() }

// Resize reallocates the grid, optionally preserving state over the
// overlapping rectangle. Must not run concurrently with Step.
func (w *World) Resize(cols, rows, cellSize int, preserve bool) error {
	if err := w.grid.Resize(cols, rows, cellSize, preserve); err != nil {
		return err
	}
	w.cfg.Width = cols
	w.cfg.Height = rows
	w.cfg.CellSize = w.grid.cellSize
	return nil
}

// Reset repopulates the grid deterministically from the seed: SeedDisease of
// the cells start Diseased, SeedDensity start as a species (split evenly
// between A and B), the rest Empty. A zero seed falls back to the configured
// one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.grid.Clear()
	rng := pkgcore.NewRNG(effective)
	cells := w.grid.Cells()
	p := w.cfg.Params
	for i := range cells {
		if rng.Float64() < p.SeedDisease {
			cells[i] = uint8(Diseased)
			continue
		}
		if rng.Float64() < p.SeedDensity {
			if rng.Bool() {
				cells[i] = uint8(SpeciesA)
			} else {
				cells[i] = uint8(SpeciesB)
			}
		}
	}
}

// Step advances the automaton by one generation. Every cell is evaluated
// against the current buffer only, so the update is synchronous; the buffers
// trade places in O(1) once the pass completes. Age counters mutate in place
// during the pass, which is safe because each cell's age depends only on its
// own prior state.
func (w *World) Step() {
	p := w.cfg.Params // one snapshot per generation
	g := w.grid
	cur := g.cur.Cells()
	nxt := g.nxt.Cells()
	ageD := g.ageDisease.Cells()
	ageY := g.ageContest.Cells()

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			idx := y*g.cols + x
			state := Cell(cur[idx])
			n := g.NeighborCounts(x, y)

			// Contested neighbors amplify a species' pressure in
			// proportion to its own presence.
			boost := 1 + 0.5*float64(n.Contested)
			sa := float64(n.A) * boost
			sb := float64(n.B) * boost

			// Rule 1: infection pre-empts everything for occupied
			// and contested cells.
			if state == SpeciesA || state == SpeciesB || state == Contested {
				if infects(state, n, p) {
					nxt[idx] = uint8(Diseased)
					ageD[idx] = 0
					ageY[idx] = 0
					continue
				}
			}

			switch state {
			case Diseased:
				// Rule 2: disease burns out after DiseaseTTL
				// generations.
				if int(ageD[idx]) >= p.DiseaseTTL {
					nxt[idx] = uint8(Empty)
					ageD[idx] = 0
				} else {
					nxt[idx] = uint8(Diseased)
					if ageD[idx] < 255 {
						ageD[idx]++
					}
				}

			case Empty:
				// Rule 3: birth; simultaneous claims produce a
				// contested cell.
				birth := float64(p.Birth)
				switch {
				case sa >= birth && sb >= birth:
					nxt[idx] = uint8(Contested)
					ageY[idx] = 0
				case sa >= birth:
					nxt[idx] = uint8(SpeciesA)
				case sb >= birth:
					nxt[idx] = uint8(SpeciesB)
				default:
					nxt[idx] = uint8(Empty)
				}

			case SpeciesA, SpeciesB:
				// Rule 4: a strong enough opponent contests the
				// cell before survival is even considered.
				nSame, nOpp := n.A, n.B
				sSame, sOpp := sa, sb
				if state == SpeciesB {
					nSame, nOpp = n.B, n.A
					sSame, sOpp = sb, sa
				}
				contested := sOpp >= float64(p.ContestMin) &&
					sOpp-sSame >= float64(p.ContestMargin)
				survives := nSame >= p.SurviveMin && nSame <= p.SurviveMax &&
					nSame < p.Overcrowd && nOpp < p.Overcrowd
				switch {
				case contested:
					nxt[idx] = uint8(Contested)
					ageY[idx] = 0
				case survives:
					nxt[idx] = uint8(state)
				default:
					nxt[idx] = uint8(Empty)
				}

			case Contested:
				// Rule 5: resolve toward a clearly dominant
				// species, otherwise decay once support thins
				// out or the dispute has dragged on ContestTTL
				// generations.
				cmin := float64(p.ContestMin)
				marg := float64(p.ContestMargin)
				switch {
				case sa >= cmin && sa-sb >= marg:
					nxt[idx] = uint8(SpeciesA)
					ageY[idx] = 0
				case sb >= cmin && sb-sa >= marg:
					nxt[idx] = uint8(SpeciesB)
					ageY[idx] = 0
				case n.A+n.B < 2 || int(ageY[idx]) >= p.ContestTTL:
					nxt[idx] = uint8(Empty)
					ageY[idx] = 0
				default:
					nxt[idx] = uint8(Contested)
					if ageY[idx] < 255 {
						ageY[idx]++
					}
				}

			default:
				// Unreachable for the closed state set.
				nxt[idx] = uint8(Empty)
			}
		}
	}

	g.swap()
}

// infects evaluates the infection rule. A strong outbreak infects
// regardless; a weak one only takes hold where the occupant is isolated.
func infects(state Cell, n NeighborCounts, p Params) bool {
	if n.Diseased >= p.InfectStrong {
		return true
	}
	if p.InfectWeak <= 0 || n.Diseased < p.InfectWeak {
		return false
	}
	switch state {
	case SpeciesA:
		return n.A <= 1
	case SpeciesB:
		return n.B <= 1
	default: // Contested
		return n.A <= 1 || n.B <= 1
	}
}

func init() {
	core.Register("duel", func(cfg map[string]string) core.Sim {
		world, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			// FromMap never produces non-positive dimensions.
			panic(err)
		}
		return world
	})
}
