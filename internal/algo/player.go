// Package algo provides the two reference Player/TankAlgorithm pairs
// required by spec.md §4.4 (Defensive and Offensive) plus a handful of
// trivial test algorithms (DoNothing, AlwaysShoot, AlwaysMoveForward,
// AlwaysMoveBackward)
// ported from original_source/test_libraries for use in seed-case
// tests and as opponents in smoke matches.
package algo

import (
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/view"
)

// BasicPlayer parses the View it is given into a BattleInfo and hands
// it to the requesting algorithm. It carries no state of its own
// beyond the player ID needed to tell friendly tanks from enemy ones.
type BasicPlayer struct {
	PlayerID int
}

// NewBasicPlayer satisfies contracts.PlayerFactory.
func NewBasicPlayer(playerID, numTanks int) contracts.Player {
	return &BasicPlayer{PlayerID: playerID}
}

func (p *BasicPlayer) UpdateTankWithBattleInfo(a contracts.TankAlgorithm, v *view.View) {
	a.UpdateBattleInfo(p.buildBattleInfo(v))
}

// buildBattleInfo is the shared parse used by Basic and Offensive
// players: it walks the character grid once, classifying every cell
// and collecting tank/shell positions as it goes.
func (p *BasicPlayer) buildBattleInfo(v *view.View) *contracts.BattleInfo {
	bi := &contracts.BattleInfo{
		Width:  v.W,
		Height: v.H,
		Cells:  make([][]board.CellKind, v.H),
	}
	for y := 0; y < v.H; y++ {
		row := make([]board.CellKind, v.W)
		for x := 0; x < v.W; x++ {
			ch := v.At(board.Point{X: x, Y: y})
			pos := board.Point{X: x, Y: y}
			switch ch {
			case view.CellWall:
				row[x] = board.Wall
			case view.CellMine:
				row[x] = board.Mine
			case view.CellShell:
				row[x] = board.Empty
				bi.Shells = append(bi.Shells, pos)
			case view.CellOwnTank:
				row[x] = board.Empty
				bi.OwnPosition = pos
				bi.FriendlyTanks = append(bi.FriendlyTanks, pos)
			default:
				row[x] = board.Empty
				if ch >= '1' && ch <= '9' {
					if int(ch-'0') == p.PlayerID {
						bi.FriendlyTanks = append(bi.FriendlyTanks, pos)
					} else {
						bi.EnemyTanks = append(bi.EnemyTanks, pos)
					}
				}
			}
		}
		bi.Cells[y] = row
	}
	return bi
}

// OffensivePlayer additionally designates a target position for its
// tanks to pursue: the first enemy tank position found in the view, if
// any.
type OffensivePlayer struct {
	BasicPlayer
}

// NewOffensivePlayer satisfies contracts.PlayerFactory.
func NewOffensivePlayer(playerID, numTanks int) contracts.Player {
	return &OffensivePlayer{BasicPlayer{PlayerID: playerID}}
}

func (p *OffensivePlayer) UpdateTankWithBattleInfo(a contracts.TankAlgorithm, v *view.View) {
	bi := p.buildBattleInfo(v)
	if len(bi.EnemyTanks) > 0 {
		target := bi.EnemyTanks[0]
		bi.Target = &target
	}
	a.UpdateBattleInfo(bi)
}
