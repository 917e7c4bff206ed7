package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapIsIdempotent(t *testing.T) {
	cases := []Point{{X: -3, Y: -1}, {X: 10, Y: 10}, {X: 0, Y: 0}, {X: 4, Y: 4}}
	for _, p := range cases {
		once := Wrap(p, 5, 5)
		twice := Wrap(once, 5, 5)
		assert.Equal(t, once, twice, "wrap(wrap(p)) must equal wrap(p) for %v", p)
	}
}

func TestStepDistanceSymmetric(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 4, Y: 3}
	assert.Equal(t, StepDistance(a, b, 5, 5), StepDistance(b, a, 5, 5))
}

func TestForwardMoveWrapsAtEdge(t *testing.T) {
	p := Point{X: 0, Y: 2}
	next := Wrap(p.Add(West.Delta()), 5, 5)
	assert.Equal(t, Point{X: 4, Y: 2}, next)
}

func TestDamageWallDestroysAfterTwoHits(t *testing.T) {
	b := New(3, 3)
	p := Point{X: 1, Y: 1}
	b.SetCell(p, Wall)
	require.Equal(t, InitialWallHP, b.WallHP(p))

	destroyed := b.DamageWall(p)
	assert.False(t, destroyed)
	assert.Equal(t, Wall, b.Cell(p))

	destroyed = b.DamageWall(p)
	assert.True(t, destroyed)
	assert.Equal(t, Empty, b.Cell(p))
	assert.Equal(t, 0, b.WallHP(p))
}

func TestSetCellClearsWallHPWhenOverwritten(t *testing.T) {
	b := New(3, 3)
	p := Point{X: 0, Y: 0}
	b.SetCell(p, Wall)
	b.SetCell(p, Empty)
	assert.Equal(t, 0, b.WallHP(p))
}

func TestParseGridFindsSpawnsAndWarnsOnShortRows(t *testing.T) {
	rows := []string{
		"#####",
		"#1 2#",
		"## ?#",
	}
	b, spawns, warnings := ParseGrid(rows, 5, 5)
	require.Len(t, spawns, 2)
	assert.Equal(t, 1, spawns[0].PlayerID)
	assert.Equal(t, 2, spawns[1].PlayerID)
	assert.NotEmpty(t, warnings, "short rows and the '?' character should both warn")
	assert.Equal(t, Wall, b.Cell(Point{X: 0, Y: 0}))
}

func TestParseGridRejectsNothingItselfOnZeroTanks(t *testing.T) {
	rows := []string{"###", "# #", "###"}
	_, spawns, _ := ParseGrid(rows, 3, 3)
	assert.Empty(t, spawns, "ParseGrid never fails on its own; rejecting zero tanks is mapfile's job")
}
