package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezynda3/tank-arena/internal/algo"
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/entity"
)

// walledArena builds a w x h board with a one-cell Wall border and an
// otherwise Empty interior, the shape every seed case in spec.md §8
// assumes.
func walledArena(w, h int) *board.Board {
	b := board.New(w, h)
	for x := 0; x < w; x++ {
		b.SetCell(board.Point{X: x, Y: 0}, board.Wall)
		b.SetCell(board.Point{X: x, Y: h - 1}, board.Wall)
	}
	for y := 0; y < h; y++ {
		b.SetCell(board.Point{X: 0, Y: y}, board.Wall)
		b.SetCell(board.Point{X: w - 1, Y: y}, board.Wall)
	}
	return b
}

// S1: 5x5 walled arena, both tanks DoNothing, MaxSteps=5, NumShells=10.
// Expected: tie, MaxSteps, remaining_tanks = [1,1], rounds = 5.
func TestSeedCaseS1BothDoNothingTiesAtMaxSteps(t *testing.T) {
	b := walledArena(5, 5)
	tanks := []*entity.Tank{
		entity.NewTank(1, board.Point{X: 1, Y: 1}, board.West, 10),
		entity.NewTank(2, board.Point{X: 3, Y: 1}, board.East, 10),
	}
	algos := []contracts.TankAlgorithm{
		algo.NewDoNothingTankAlgorithm(1, 0),
		algo.NewDoNothingTankAlgorithm(2, 0),
	}
	players := map[int]contracts.Player{
		1: algo.NewNoOpPlayer(1, 1),
		2: algo.NewNoOpPlayer(2, 1),
	}

	eng := New(5, 10, false, nil)
	res := eng.Run(b, tanks, algos, players)

	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, MaxSteps, res.Reason)
	assert.Equal(t, 5, res.Rounds)
	require.Equal(t, 1, res.RemainingTanks[1])
	require.Equal(t, 1, res.RemainingTanks[2])
}

// S2: 20x20 walled arena with a wall splitting the tanks so no shot
// reaches the other tank (the first two volleys wear the wall down;
// the later ones meet head-on where it stood); both AlwaysShoot,
// NumShells=5. Expected: tie, ZeroShells, both tanks alive.
func TestSeedCaseS2BothAlwaysShootTiesOnZeroShells(t *testing.T) {
	b := walledArena(20, 20)
	for y := 1; y < 19; y++ {
		b.SetCell(board.Point{X: 10, Y: y}, board.Wall)
	}
	tanks := []*entity.Tank{
		entity.NewTank(1, board.Point{X: 5, Y: 5}, board.East, 5),
		entity.NewTank(2, board.Point{X: 15, Y: 5}, board.West, 5),
	}
	algos := []contracts.TankAlgorithm{
		algo.NewAlwaysShootTankAlgorithm(1, 0),
		algo.NewAlwaysShootTankAlgorithm(2, 0),
	}
	players := map[int]contracts.Player{
		1: algo.NewNoOpPlayer(1, 1),
		2: algo.NewNoOpPlayer(2, 1),
	}

	eng := New(1000, 5, false, nil)
	res := eng.Run(b, tanks, algos, players)

	assert.Equal(t, 0, res.Winner)
	assert.Equal(t, ZeroShells, res.Reason)
	assert.Equal(t, 1, res.RemainingTanks[1])
	assert.Equal(t, 1, res.RemainingTanks[2])
}

// S3 (relaxed): with a clear line of fire and no cooldown held back,
// the always-shooting tank eventually destroys the idle one.
func TestAlwaysShootDestroysUndefendedTank(t *testing.T) {
	b := walledArena(5, 5)
	tanks := []*entity.Tank{
		entity.NewTank(1, board.Point{X: 1, Y: 1}, board.East, 10),
		entity.NewTank(2, board.Point{X: 3, Y: 1}, board.West, 10),
	}
	algos := []contracts.TankAlgorithm{
		algo.NewAlwaysShootTankAlgorithm(1, 0),
		algo.NewDoNothingTankAlgorithm(2, 0),
	}
	players := map[int]contracts.Player{
		1: algo.NewNoOpPlayer(1, 1),
		2: algo.NewNoOpPlayer(2, 1),
	}

	eng := New(50, 10, false, nil)
	res := eng.Run(b, tanks, algos, players)

	assert.Equal(t, 1, res.Winner)
	assert.Equal(t, AllTanksDead, res.Reason)
	assert.Equal(t, 0, res.RemainingTanks[2])
}

// Regression for the backward-latch per-step log: only the tick that
// starts the latch and the continuous-movement ticks after it fires
// are plain; both the waiting ticks and the tick that performs the
// deferred move itself render "(ignored)", matching
// original_source/GameManager/game_manager_test.cpp's
// ProcessStep_MoveBackward_OnlyMovesOnThirdStep.
func TestMoveBackwardLatchLogMatchesSourceSequence(t *testing.T) {
	b := walledArena(7, 7)
	tanks := []*entity.Tank{
		entity.NewTank(1, board.Point{X: 3, Y: 2}, board.North, 5),
		entity.NewTank(2, board.Point{X: 5, Y: 5}, board.West, 5),
	}
	algos := []contracts.TankAlgorithm{
		algo.NewAlwaysMoveBackwardTankAlgorithm(1, 0),
		algo.NewDoNothingTankAlgorithm(2, 0),
	}
	players := map[int]contracts.Player{
		1: algo.NewNoOpPlayer(1, 1),
		2: algo.NewNoOpPlayer(2, 1),
	}

	eng := New(4, 5, false, nil)
	res := eng.Run(b, tanks, algos, players)

	require.Len(t, res.StepLog, 4)
	want := []string{"MoveBackward", "MoveBackward (ignored)", "MoveBackward (ignored)", "MoveBackward"}
	for i, line := range res.StepLog {
		token := strings.SplitN(line, ", ", 2)[0]
		assert.Equal(t, want[i], token, "step %d", i+1)
	}

	// The deferred move lands on step 3 and the latch keeps firing
	// every step thereafter, so by step 4 the tank has moved backward
	// twice.
	assert.Equal(t, board.Point{X: 3, Y: 4}, tanks[0].Position)
}
