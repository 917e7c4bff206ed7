// Package entity holds the mutable Tank and Shell records the engine
// advances each step, and the rules for deriving their next position
// and cooldown state.
package entity

import "github.com/ezynda3/tank-arena/internal/board"

// ShootCooldown is the number of steps a tank must wait after firing
// before it may shoot again.
const ShootCooldown = 4

// BackwardLatchTicks is the number of steps a MoveBackward request
// waits before it takes effect, per the backward-move protocol in
// spec.md §4.6.
const BackwardLatchTicks = 3

// Tank is one player's combat unit. PlayerID identifies which player
// it belongs to (1-9); a player may command more than one tank.
type Tank struct {
	PlayerID  int
	Position  board.Point
	Heading   board.Direction
	Destroyed bool

	ShellsLeft    int
	ShootCooldown int
	BackwardLatch int // 0 = idle, 1..BackwardLatchTicks counts down to firing
	LatchHasFired bool // true once the latch has fired, until a MoveForward clears it
}

// NewTank creates a live tank at the given spawn with a full shell
// supply and no cooldown or latch state.
func NewTank(playerID int, pos board.Point, heading board.Direction, shells int) *Tank {
	return &Tank{
		PlayerID:   playerID,
		Position:   pos,
		Heading:    heading,
		ShellsLeft: shells,
	}
}

// NextForward is the cell a MoveForward would place this tank on.
func (t *Tank) NextForward(w, h int) board.Point {
	return board.Wrap(t.Position.Add(t.Heading.Delta()), w, h)
}

// NextBackward is the cell a completed MoveBackward would place this
// tank on.
func (t *Tank) NextBackward(w, h int) board.Point {
	return board.Wrap(t.Position.Sub(t.Heading.Delta()), w, h)
}

// RotateLeft45/RotateRight45/RotateLeft90/RotateRight90 update the
// tank's heading in place.
func (t *Tank) RotateLeft45()  { t.Heading = t.Heading.RotatedLeft45() }
func (t *Tank) RotateRight45() { t.Heading = t.Heading.RotatedRight45() }
func (t *Tank) RotateLeft90()  { t.Heading = t.Heading.RotatedLeft90() }
func (t *Tank) RotateRight90() { t.Heading = t.Heading.RotatedRight90() }

// CanShoot reports whether the tank may fire this step.
func (t *Tank) CanShoot() bool {
	return !t.Destroyed && t.ShellsLeft > 0 && t.ShootCooldown == 0
}

// Shoot consumes one shell and resets the cooldown. Callers must check
// CanShoot first; Shoot does not validate.
func (t *Tank) Shoot() {
	t.ShellsLeft--
	t.ShootCooldown = ShootCooldown
}

// Tick decrements the shoot cooldown for the next step. It does not
// touch the backward latch; that is advanced explicitly by the engine
// alongside action application, since its timing depends on the
// action requested this step.
func (t *Tank) Tick() {
	if t.ShootCooldown > 0 {
		t.ShootCooldown--
	}
}

// StartBackwardLatch begins (or continues) the three-tick countdown
// for a MoveBackward request. If the latch has already fired and no
// MoveForward has cleared LatchHasFired since, a MoveBackward executes
// immediately instead (the engine checks LatchHasFired before calling
// this).
func (t *Tank) StartBackwardLatch() {
	if t.BackwardLatch == 0 {
		t.BackwardLatch = BackwardLatchTicks
	}
}

// CancelBackwardLatch clears a ticking latch in response to a
// MoveForward request arriving before it fires. It is a no-op if no
// latch is ticking.
func (t *Tank) CancelBackwardLatch() {
	t.BackwardLatch = 0
}

// AdvanceBackwardLatch decrements a ticking latch and reports whether
// it fires this step (reaches zero).
func (t *Tank) AdvanceBackwardLatch() bool {
	if t.BackwardLatch == 0 {
		return false
	}
	t.BackwardLatch--
	if t.BackwardLatch == 0 {
		t.LatchHasFired = true
		return true
	}
	return false
}
