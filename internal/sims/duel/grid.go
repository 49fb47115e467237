package duel

import (
	"errors"

	"duel-ca/internal/core"
)

// Cell enumerates the per-cell states of the duel automaton.
type Cell uint8

const (
	Empty Cell = iota
	SpeciesA
	SpeciesB
	Diseased
	Contested

	numCellStates = 5
)

// ErrInvalidDimension reports a non-positive grid dimension at create or
// resize time.
var ErrInvalidDimension = errors.New("duel: grid dimensions must be positive")

// NeighborCounts aggregates the Moore neighborhood of a cell by state.
// Empty neighbors are not counted.
type NeighborCounts struct {
	A         int
	B         int
	Diseased  int
	Contested int
}

// Grid owns the double-buffered state planes and the two per-cell age
// counters. The age planes track consecutive generations spent in the
// Diseased and Contested states and are zero everywhere else; Set, Step and
// Resize all preserve that lockstep.
type Grid struct {
	cols, rows int
	cellSize   int

	cur *core.ByteGrid
	nxt *core.ByteGrid

	ageDisease *core.ByteGrid
	ageContest *core.ByteGrid
}

// NewGrid allocates an all-Empty grid with zeroed ages. cellSize is a
// renderer hint carried along with the grid. Returns ErrInvalidDimension when
// either dimension is not positive.
func NewGrid(cols, rows, cellSize int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrInvalidDimension
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{
		cols:       cols,
		rows:       rows,
		cellSize:   cellSize,
		cur:        core.NewByteGrid(cols, rows),
		nxt:        core.NewByteGrid(cols, rows),
		ageDisease: core.NewByteGrid(cols, rows),
		ageContest: core.NewByteGrid(cols, rows),
	}, nil
}

// Columns reports the grid width.
func (g *Grid) Columns() int { return g.cols }

// Rows reports the grid height.
func (g *Grid) Rows() int { return g.rows }

// CellSize reports the renderer sizing hint.
func (g *Grid) CellSize() int { return g.cellSize }

// Cells exposes the raw current-state buffer for bulk rendering.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// DiseaseAges exposes the disease age plane for overlays.
func (g *Grid) DiseaseAges() []uint8 { return g.ageDisease.Cells() }

// ContestedAges exposes the contested age plane for overlays.
func (g *Grid) ContestedAges() []uint8 { return g.ageContest.Cells() }

// Wrap maps arbitrary coordinates onto the torus.
func (g *Grid) Wrap(x, y int) (int, int) { return g.cur.Wrap(x, y) }

// Get reads the current state at (x, y). Coordinates must be in range;
// callers editing from pointer input clamp before calling.
func (g *Grid) Get(x, y int) Cell { return Cell(g.cur.Get(x, y)) }

// Set writes a state at (x, y). An age counter is reset only when the cell
// genuinely leaves the tracked state: re-setting a Diseased cell to Diseased
// keeps its disease age, and likewise for Contested.
func (g *Grid) Set(x, y int, s Cell) {
	if s != Diseased {
		g.ageDisease.Set(x, y, 0)
	}
	if s != Contested {
		g.ageContest.Set(x, y, 0)
	}
	g.cur.Set(x, y, uint8(s))
}

// Clear resets every cell to Empty and both age planes to zero.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.nxt.Clear()
	g.ageDisease.Clear()
	g.ageContest.Clear()
}

// Resize reallocates all planes at the new dimensions, zero-filled. When
// preserve is set the state of the overlapping top-left rectangle is copied
// over; ages always reset to zero. Returns ErrInvalidDimension when either
// dimension is not positive.
func (g *Grid) Resize(cols, rows, cellSize int, preserve bool) error {
	if cols <= 0 || rows <= 0 {
		return ErrInvalidDimension
	}
	if cellSize <= 0 {
		cellSize = g.cellSize
	}
	cur := core.NewByteGrid(cols, rows)
	if preserve {
		cur.CopyOverlap(g.cur)
	}
	g.cols, g.rows = cols, rows
	g.cellSize = cellSize
	g.cur = cur
	g.nxt = core.NewByteGrid(cols, rows)
	g.ageDisease = core.NewByteGrid(cols, rows)
	g.ageContest = core.NewByteGrid(cols, rows)
	return nil
}

// NeighborCounts scans the 8 toroidally wrapped Moore neighbors of (x, y)
// and tallies them by state. It allocates nothing; Step calls it once per
// cell and it dominates the per-generation cost.
func (g *Grid) NeighborCounts(x, y int) NeighborCounts {
	var n NeighborCounts
	cells := g.cur.Cells()
	w, h := g.cols, g.rows
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 {
			ny += h
		} else if ny >= h {
			ny -= h
		}
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 {
				nx += w
			} else if nx >= w {
				nx -= w
			}
			switch Cell(cells[row+nx]) {
			case SpeciesA:
				n.A++
			case SpeciesB:
				n.B++
			case Diseased:
				n.Diseased++
			case Contested:
				n.Contested++
			}
		}
	}
	return n
}

// swap exchanges the current and next buffer handles. O(1), no copying.
func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
}
