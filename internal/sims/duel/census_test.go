package duel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeCensusCounts(t *testing.T) {
	world := testWorld(t, 4, 4)
	g := world.Grid()
	g.Set(0, 0, SpeciesA)
	g.Set(1, 0, SpeciesA)
	g.Set(2, 0, SpeciesB)
	g.Set(0, 1, Diseased)
	g.Set(1, 1, Contested)

	c := world.TakeCensus()
	assert.Equal(t, 2, c.SpeciesA)
	assert.Equal(t, 1, c.SpeciesB)
	assert.Equal(t, 1, c.Diseased)
	assert.Equal(t, 1, c.Contested)
	assert.Equal(t, 11, c.Empty)
	assert.Equal(t, 16, c.Total())
}

func TestCensusOutcomes(t *testing.T) {
	assert.True(t, Census{Empty: 10, Diseased: 2}.Extinct(),
		"disease remnants alone count as extinction")
	assert.False(t, Census{Contested: 1}.Extinct(),
		"contested territory implies both species are present")

	winner, ok := Census{SpeciesA: 5}.Winner()
	assert.True(t, ok)
	assert.Equal(t, SpeciesA, winner)

	_, ok = Census{SpeciesA: 5, SpeciesB: 1}.Winner()
	assert.False(t, ok, "no winner while both species live")

	_, ok = Census{SpeciesA: 5, Contested: 1}.Winner()
	assert.False(t, ok, "no winner while territory is contested")
}

func TestContestedShare(t *testing.T) {
	c := Census{Empty: 6, Contested: 2}
	assert.InDelta(t, 0.25, c.ContestedShare(), 1e-9)
	assert.Zero(t, Census{}.ContestedShare())
}
