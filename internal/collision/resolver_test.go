package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/entity"
)

func TestShellDestroyedByWallDamagesIt(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 2, Y: 2}
	b.SetCell(p, board.Wall)

	s := entity.NewShell(1, p, board.East)
	Resolve(b, nil, []*entity.Shell{s})

	assert.True(t, s.Destroyed)
	assert.Equal(t, board.InitialWallHP-1, b.WallHP(p))
}

func TestTwoShellsOnSameWallBothConsumedWhenWallFalls(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 2, Y: 2}
	b.SetCell(p, board.Wall)
	b.DamageWall(p) // one hit already landed; HP is now 1

	s1 := entity.NewShell(1, p, board.East)
	s2 := entity.NewShell(2, p, board.West)
	Resolve(b, nil, []*entity.Shell{s1, s2})

	assert.True(t, s1.Destroyed)
	assert.True(t, s2.Destroyed)
	assert.Equal(t, board.Empty, b.Cell(p))
}

func TestCoLocatedShellsDestroyEachOther(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 1, Y: 1}
	s1 := entity.NewShell(1, p, board.East)
	s2 := entity.NewShell(2, p, board.West)
	Resolve(b, nil, []*entity.Shell{s1, s2})

	assert.True(t, s1.Destroyed)
	assert.True(t, s2.Destroyed)
}

func TestShellDestroysTankItShares(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 3, Y: 3}
	tank := entity.NewTank(1, p, board.North, 1)
	shell := entity.NewShell(2, p, board.East)
	Resolve(b, []*entity.Tank{tank}, []*entity.Shell{shell})

	assert.True(t, tank.Destroyed)
	assert.True(t, shell.Destroyed)
}

func TestTankDestroyedByMineConsumesIt(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 2, Y: 2}
	b.SetCell(p, board.Mine)
	tank := entity.NewTank(1, p, board.North, 1)
	Resolve(b, []*entity.Tank{tank}, nil)

	assert.True(t, tank.Destroyed)
	assert.Equal(t, board.Empty, b.Cell(p))
}

func TestCoLocatedTanksDestroyEachOther(t *testing.T) {
	b := board.New(5, 5)
	p := board.Point{X: 1, Y: 1}
	t1 := entity.NewTank(1, p, board.North, 1)
	t2 := entity.NewTank(2, p, board.South, 1)
	Resolve(b, []*entity.Tank{t1, t2}, nil)

	assert.True(t, t1.Destroyed)
	assert.True(t, t2.Destroyed)
}

func TestSwappedTanksDestroyEachOther(t *testing.T) {
	before := []board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	t1 := entity.NewTank(1, board.Point{X: 1, Y: 0}, board.East, 1)
	t2 := entity.NewTank(2, board.Point{X: 0, Y: 0}, board.West, 1)
	tanks := []*entity.Tank{t1, t2}

	ResolveSwaps(tanks, before)

	assert.True(t, t1.Destroyed)
	assert.True(t, t2.Destroyed)
}

func TestNonSwappedAdjacentTanksSurvive(t *testing.T) {
	before := []board.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}
	t1 := entity.NewTank(1, board.Point{X: 1, Y: 0}, board.East, 1)
	t2 := entity.NewTank(2, board.Point{X: 2, Y: 0}, board.West, 1)
	tanks := []*entity.Tank{t1, t2}

	ResolveSwaps(tanks, before)

	assert.False(t, t1.Destroyed)
	assert.False(t, t2.Destroyed)
}
