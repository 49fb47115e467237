package duel

// Census counts the cells in each state at the moment it was taken.
type Census struct {
	Empty     int
	SpeciesA  int
	SpeciesB  int
	Diseased  int
	Contested int
}

// TakeCensus tallies the current buffer by state.
func (w *World) TakeCensus() Census {
	var c Census
	for _, v := range w.grid.Cells() {
		switch Cell(v) {
		case SpeciesA:
			c.SpeciesA++
		case SpeciesB:
			c.SpeciesB++
		case Diseased:
			c.Diseased++
		case Contested:
			c.Contested++
		default:
			c.Empty++
		}
	}
	return c
}

// Total returns the number of cells counted.
func (c Census) Total() int {
	return c.Empty + c.SpeciesA + c.SpeciesB + c.Diseased + c.Contested
}

// Extinct reports whether both species have died out entirely. Contested
// cells count as live presence of both.
func (c Census) Extinct() bool {
	return c.SpeciesA == 0 && c.SpeciesB == 0 && c.Contested == 0
}

// Winner returns the sole surviving species, if exactly one remains and no
// territory is still contested.
func (c Census) Winner() (Cell, bool) {
	if c.Contested > 0 {
		return Empty, false
	}
	switch {
	case c.SpeciesA > 0 && c.SpeciesB == 0:
		return SpeciesA, true
	case c.SpeciesB > 0 && c.SpeciesA == 0:
		return SpeciesB, true
	}
	return Empty, false
}

// ContestedShare returns the fraction of the grid currently contested.
func (c Census) ContestedShare() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Contested) / float64(total)
}
