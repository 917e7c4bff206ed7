package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezynda3/tank-arena/internal/board"
)

func TestShootSetsCooldownAndConsumesShell(t *testing.T) {
	tank := NewTank(1, board.Point{X: 0, Y: 0}, board.North, 3)
	require.True(t, tank.CanShoot())

	tank.Shoot()
	assert.Equal(t, 2, tank.ShellsLeft)
	assert.Equal(t, ShootCooldown, tank.ShootCooldown)
	assert.False(t, tank.CanShoot())
}

func TestTickDecrementsCooldownOnly(t *testing.T) {
	tank := NewTank(1, board.Point{}, board.North, 1)
	tank.Shoot()
	tank.StartBackwardLatch()
	for i := 0; i < ShootCooldown; i++ {
		assert.False(t, tank.CanShoot())
		tank.Tick()
	}
	assert.True(t, tank.ShellsLeft == 0 || tank.ShootCooldown == 0)
	assert.Equal(t, 0, tank.ShootCooldown)
	assert.Equal(t, BackwardLatchTicks, tank.BackwardLatch, "Tick must not advance the backward latch")
}

func TestBackwardLatchFiresOnThirdTick(t *testing.T) {
	tank := NewTank(1, board.Point{}, board.North, 1)
	tank.StartBackwardLatch()
	assert.False(t, tank.AdvanceBackwardLatch())
	assert.False(t, tank.AdvanceBackwardLatch())
	assert.True(t, tank.AdvanceBackwardLatch())
	assert.True(t, tank.LatchHasFired)
}

func TestCancelBackwardLatchStopsIt(t *testing.T) {
	tank := NewTank(1, board.Point{}, board.North, 1)
	tank.StartBackwardLatch()
	tank.AdvanceBackwardLatch()
	tank.CancelBackwardLatch()
	assert.Equal(t, 0, tank.BackwardLatch)
}

func TestRotationComposesToSameTotalAngle(t *testing.T) {
	// Two 45-degree rights should equal one 90-degree right.
	d := board.North
	viaTwo45 := d.RotatedRight45().RotatedRight45()
	viaOne90 := d.RotatedRight90()
	assert.Equal(t, viaOne90, viaTwo45)
}
