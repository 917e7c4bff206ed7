package algo

import (
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/view"
)

// DoNothingTankAlgorithm requests battle info every step and never
// otherwise acts — the simplest possible opponent, ported from
// test_libraries/algorithms/do_nothing_tank_algorithm.cpp.
type DoNothingTankAlgorithm struct{}

func NewDoNothingTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return DoNothingTankAlgorithm{}
}

func (DoNothingTankAlgorithm) GetAction() contracts.ActionRequest { return contracts.GetBattleInfo }
func (DoNothingTankAlgorithm) UpdateBattleInfo(*contracts.BattleInfo) {}

// AlwaysShootTankAlgorithm fires every step regardless of cooldown or
// line of sight — the engine is responsible for rejecting the request
// when the tank can't actually shoot.
type AlwaysShootTankAlgorithm struct{}

func NewAlwaysShootTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return AlwaysShootTankAlgorithm{}
}

func (AlwaysShootTankAlgorithm) GetAction() contracts.ActionRequest { return contracts.Shoot }
func (AlwaysShootTankAlgorithm) UpdateBattleInfo(*contracts.BattleInfo) {}

// AlwaysMoveForwardTankAlgorithm requests MoveForward every step; when
// a Wall blocks the way the engine ignores the move and the tank stays
// put, as it would for any other tank.
type AlwaysMoveForwardTankAlgorithm struct{}

func NewAlwaysMoveForwardTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return AlwaysMoveForwardTankAlgorithm{}
}

func (AlwaysMoveForwardTankAlgorithm) GetAction() contracts.ActionRequest {
	return contracts.MoveForward
}
func (AlwaysMoveForwardTankAlgorithm) UpdateBattleInfo(*contracts.BattleInfo) {}

// AlwaysMoveBackwardTankAlgorithm requests MoveBackward every step,
// exercising the three-tick backward-latch protocol in isolation.
type AlwaysMoveBackwardTankAlgorithm struct{}

func NewAlwaysMoveBackwardTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return AlwaysMoveBackwardTankAlgorithm{}
}

func (AlwaysMoveBackwardTankAlgorithm) GetAction() contracts.ActionRequest {
	return contracts.MoveBackward
}
func (AlwaysMoveBackwardTankAlgorithm) UpdateBattleInfo(*contracts.BattleInfo) {}

// NoOpPlayer is a Player that never builds BattleInfo — paired with
// algorithms that never request it (AlwaysShoot, AlwaysMoveForward,
// AlwaysMoveBackward).
type NoOpPlayer struct{}

func NewNoOpPlayer(playerID, numTanks int) contracts.Player { return NoOpPlayer{} }

func (NoOpPlayer) UpdateTankWithBattleInfo(contracts.TankAlgorithm, *view.View) {}
