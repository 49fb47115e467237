package duel

import (
	"errors"
	"testing"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {-3, 10}, {10, -3}, {0, 0}}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1], 1); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimension", c[0], c[1], err)
		}
	}
	if _, err := NewGrid(1, 1, 1); err != nil {
		t.Fatalf("NewGrid(1, 1) unexpected error: %v", err)
	}
}

func TestResizeRejectsNonPositiveDimensions(t *testing.T) {
	grid, err := NewGrid(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := grid.Resize(0, 4, 1, false); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Resize(0, 4) error = %v, want ErrInvalidDimension", err)
	}
	if err := grid.Resize(4, -1, 1, false); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("Resize(4, -1) error = %v, want ErrInvalidDimension", err)
	}
	if grid.Columns() != 4 || grid.Rows() != 4 {
		t.Fatalf("failed resize must not change dimensions, got %dx%d", grid.Columns(), grid.Rows())
	}
}

func TestWrapStaysInRange(t *testing.T) {
	grid, err := NewGrid(7, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{-1, -1}, {7, 5}, {-8, -6}, {13, 11}, {0, 0}} {
		x, y := grid.Wrap(c[0], c[1])
		if x < 0 || x >= 7 || y < 0 || y >= 5 {
			t.Fatalf("Wrap(%d, %d) = (%d, %d) escapes the grid", c[0], c[1], x, y)
		}
	}
	if x, y := grid.Wrap(-1, -1); x != 6 || y != 4 {
		t.Fatalf("Wrap(-1, -1) = (%d, %d), want (6, 4)", x, y)
	}
}

func TestNeighborCountsWrapToroidally(t *testing.T) {
	grid, err := NewGrid(10, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	grid.Set(9, 7, SpeciesA)

	n := grid.NeighborCounts(0, 0)
	if n.A != 1 {
		t.Fatalf("corner neighbor not seen across the wrap: got A=%d, want 1", n.A)
	}
	if n.B != 0 || n.Diseased != 0 || n.Contested != 0 {
		t.Fatalf("unexpected extra neighbors: %+v", n)
	}
}

func TestNeighborCountsTallyAllStates(t *testing.T) {
	grid, err := NewGrid(5, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	grid.Set(1, 1, SpeciesA)
	grid.Set(2, 1, SpeciesB)
	grid.Set(3, 1, SpeciesB)
	grid.Set(1, 3, Diseased)
	grid.Set(3, 3, Contested)
	grid.Set(2, 2, Contested) // center itself must not be counted

	n := grid.NeighborCounts(2, 2)
	if n.A != 1 || n.B != 2 || n.Diseased != 1 || n.Contested != 1 {
		t.Fatalf("NeighborCounts(2,2) = %+v, want A=1 B=2 Diseased=1 Contested=1", n)
	}
}

func TestSetResetsAgesOnlyOnDeparture(t *testing.T) {
	grid, err := NewGrid(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	grid.Set(1, 1, Diseased)
	grid.DiseaseAges()[grid.cur.Index(1, 1)] = 3

	// Re-setting the same active state keeps the age.
	grid.Set(1, 1, Diseased)
	if got := grid.DiseaseAges()[grid.cur.Index(1, 1)]; got != 3 {
		t.Fatalf("disease age reset on re-set to Diseased: got %d, want 3", got)
	}

	// A genuine departure resets it.
	grid.Set(1, 1, SpeciesA)
	if got := grid.DiseaseAges()[grid.cur.Index(1, 1)]; got != 0 {
		t.Fatalf("disease age survived departure: got %d, want 0", got)
	}

	grid.Set(2, 2, Contested)
	grid.ContestedAges()[grid.cur.Index(2, 2)] = 5
	grid.Set(2, 2, Contested)
	if got := grid.ContestedAges()[grid.cur.Index(2, 2)]; got != 5 {
		t.Fatalf("contested age reset on re-set to Contested: got %d, want 5", got)
	}
	grid.Set(2, 2, Empty)
	if got := grid.ContestedAges()[grid.cur.Index(2, 2)]; got != 0 {
		t.Fatalf("contested age survived departure: got %d, want 0", got)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	grid, err := NewGrid(6, 6, 1)
	if err != nil {
		t.Fatal(err)
	}
	grid.Set(3, 3, Contested)
	grid.ContestedAges()[grid.cur.Index(3, 3)] = 2
	grid.Set(1, 4, Diseased)
	grid.DiseaseAges()[grid.cur.Index(1, 4)] = 1

	grid.Clear()
	grid.Clear()

	for i, v := range grid.Cells() {
		if Cell(v) != Empty {
			t.Fatalf("cell %d not Empty after Clear", i)
		}
	}
	for i := range grid.DiseaseAges() {
		if grid.DiseaseAges()[i] != 0 || grid.ContestedAges()[i] != 0 {
			t.Fatalf("age planes not zeroed at %d", i)
		}
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	grid, err := NewGrid(20, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	grid.Set(5, 5, SpeciesA)
	grid.Set(15, 15, SpeciesB)

	if err := grid.Resize(30, 30, 1, true); err != nil {
		t.Fatal(err)
	}
	if got := grid.Get(5, 5); got != SpeciesA {
		t.Fatalf("grow lost preserved cell: got %v, want SpeciesA", got)
	}
	if got := grid.Get(15, 15); got != SpeciesB {
		t.Fatalf("grow lost preserved cell: got %v, want SpeciesB", got)
	}
	if got := grid.Get(25, 25); got != Empty {
		t.Fatalf("new area must start Empty, got %v", got)
	}

	if err := grid.Resize(10, 10, 1, true); err != nil {
		t.Fatal(err)
	}
	if got := grid.Get(5, 5); got != SpeciesA {
		t.Fatalf("shrink lost in-range cell: got %v, want SpeciesA", got)
	}
	// (15,15) fell outside the new bounds; growing back must not revive it.
	if err := grid.Resize(20, 20, 1, true); err != nil {
		t.Fatal(err)
	}
	if got := grid.Get(15, 15); got != Empty {
		t.Fatalf("cell dropped by shrink reappeared: got %v", got)
	}
}

func TestResizeAlwaysResetsAges(t *testing.T) {
	grid, err := NewGrid(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	grid.Set(2, 2, Diseased)
	grid.DiseaseAges()[grid.cur.Index(2, 2)] = 7

	if err := grid.Resize(8, 8, 1, true); err != nil {
		t.Fatal(err)
	}
	if got := grid.Get(2, 2); got != Diseased {
		t.Fatalf("preserve dropped state: got %v, want Diseased", got)
	}
	if got := grid.DiseaseAges()[grid.cur.Index(2, 2)]; got != 0 {
		t.Fatalf("ages must reset on resize, got %d", got)
	}
}
