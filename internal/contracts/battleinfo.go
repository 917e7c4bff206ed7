package contracts

import "github.com/ezynda3/tank-arena/internal/board"

// BattleInfo is the record a Player populates from the View it
// receives and hands to an algorithm's UpdateBattleInfo. The base
// fields cover every algorithm; Target is the offensive extension
// (Design Notes: "a base record plus an optional target field")
// and is nil for algorithms that don't use one.
type BattleInfo struct {
	Width, Height int
	Cells         [][]board.CellKind // Cells[y][x]
	FriendlyTanks []board.Point
	EnemyTanks    []board.Point
	Shells        []board.Point
	OwnPosition   board.Point

	// Target is set by an offensive Player to the position it wants
	// its tank to pursue. Nil means no designated target.
	Target *board.Point
}

// Cell is a convenience accessor that wraps p before indexing.
func (bi *BattleInfo) Cell(p board.Point) board.CellKind {
	p = board.Wrap(p, bi.Width, bi.Height)
	return bi.Cells[p.Y][p.X]
}
