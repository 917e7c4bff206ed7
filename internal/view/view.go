// Package view builds the read-only character-grid snapshot that
// algorithms receive in place of direct access to the engine's state.
package view

import (
	"strings"

	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/entity"
)

// Cell characters, per spec.md §4.3.
const (
	CellWall       = '#'
	CellMine       = '@'
	CellShell      = '*'
	CellOutOfBound = '&'
	CellEmpty      = ' '
	CellOwnTank    = '%'
)

// View is a single character-grid snapshot of the board and its
// entities, layered cell -> shell -> tank -> own-tank marker.
type View struct {
	W, H int
	grid [][]byte // grid[y][x]
}

// New renders a snapshot of b plus tanks and shells. If ownTank is
// non-nil and not destroyed, its cell is marked CellOwnTank instead of
// its player digit; final-result snapshots pass ownTank == nil to omit
// the marker, per spec.md §4.3.
func New(b *board.Board, tanks []*entity.Tank, shells []*entity.Shell, ownTank *entity.Tank) *View {
	v := &View{W: b.W, H: b.H, grid: make([][]byte, b.H)}
	for y := 0; y < b.H; y++ {
		row := make([]byte, b.W)
		for x := 0; x < b.W; x++ {
			row[x] = cellChar(b.Cell(board.Point{X: x, Y: y}))
		}
		v.grid[y] = row
	}

	for _, s := range shells {
		if s.Destroyed {
			continue
		}
		p := b.Wrap(s.Position)
		v.grid[p.Y][p.X] = CellShell
	}

	for _, t := range tanks {
		if t.Destroyed {
			continue
		}
		p := b.Wrap(t.Position)
		v.grid[p.Y][p.X] = byte('0' + t.PlayerID)
	}

	if ownTank != nil && !ownTank.Destroyed {
		p := b.Wrap(ownTank.Position)
		v.grid[p.Y][p.X] = CellOwnTank
	}

	return v
}

func cellChar(k board.CellKind) byte {
	switch k {
	case board.Wall:
		return CellWall
	case board.Mine:
		return CellMine
	default:
		return CellEmpty
	}
}

// At returns the character at p, wrapping p onto the view's
// dimensions first.
func (v *View) At(p board.Point) byte {
	p = board.Wrap(p, v.W, v.H)
	return v.grid[p.Y][p.X]
}

// AtRaw returns the character at the literal (unwrapped) coordinate,
// or CellOutOfBound if it falls outside the grid. It exists for
// algorithms that probe neighboring cells without wrap-aware
// arithmetic of their own.
func (v *View) AtRaw(x, y int) byte {
	if x < 0 || y < 0 || x >= v.W || y >= v.H {
		return CellOutOfBound
	}
	return v.grid[y][x]
}

// Rows renders the view as one string per row, for reports and logs.
func (v *View) Rows() []string {
	rows := make([]string, v.H)
	for y, row := range v.grid {
		rows[y] = string(row)
	}
	return rows
}

func (v *View) String() string {
	var b strings.Builder
	for _, row := range v.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
