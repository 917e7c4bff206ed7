package contracts

import "github.com/ezynda3/tank-arena/internal/view"

// TankAlgorithm is the per-tank decision maker the engine queries once
// per step.
type TankAlgorithm interface {
	// GetAction returns this tank's chosen action for the current step.
	GetAction() ActionRequest
	// UpdateBattleInfo is called by the Player when the engine honors
	// a previous GetBattleInfo request.
	UpdateBattleInfo(info *BattleInfo)
}

// Player is the sole party that constructs and populates a BattleInfo
// record from the engine's View and hands it to an algorithm. Splitting
// this out of TankAlgorithm lets a player coordinate multiple tanks
// (e.g. sharing scouting information) without the algorithm itself
// knowing about its siblings.
type Player interface {
	UpdateTankWithBattleInfo(algo TankAlgorithm, v *view.View)
}

// TankAlgorithmFactory constructs a fresh TankAlgorithm for one tank.
// playerID and tankIndex let a factory give distinct tanks of the same
// player distinct behavior if it wants to.
type TankAlgorithmFactory func(playerID, tankIndex int) TankAlgorithm

// PlayerFactory constructs a fresh Player for one side of a match.
type PlayerFactory func(playerID, numTanks int) Player
