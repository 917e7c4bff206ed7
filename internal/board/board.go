package board

import "fmt"

// CellKind classifies the contents of a single board cell.
type CellKind int

const (
	Empty CellKind = iota
	Wall
	Mine
)

// InitialWallHP is the number of hits a freshly-parsed wall cell
// survives before it is destroyed.
const InitialWallHP = 2

// Board is a toroidal W x H grid of CellKind plus the remaining hit
// points of every Wall cell. A cell not present in wallHP is not a
// Wall; the invariant wallHP[p] > 0 for every Wall cell and no entry
// for Empty/Mine cells is maintained by DamageWall and never broken
// elsewhere.
type Board struct {
	W, H   int
	cells  [][]CellKind // cells[y][x]
	wallHP map[Point]int
}

// New creates an all-Empty board of the given dimensions.
func New(w, h int) *Board {
	cells := make([][]CellKind, h)
	for y := range cells {
		cells[y] = make([]CellKind, w)
	}
	return &Board{W: w, H: h, cells: cells, wallHP: make(map[Point]int)}
}

// Wrap reduces p onto this board's dimensions.
func (b *Board) Wrap(p Point) Point {
	return Wrap(p, b.W, b.H)
}

// Cell returns the kind of the cell at p, wrapping p first.
func (b *Board) Cell(p Point) CellKind {
	p = b.Wrap(p)
	return b.cells[p.Y][p.X]
}

// SetCell assigns the kind of the cell at p (wrapped) and keeps the
// wallHP map consistent: setting a cell to anything but Wall clears
// its HP entry, and setting it to Wall without an existing entry
// seeds it at InitialWallHP.
func (b *Board) SetCell(p Point, k CellKind) {
	p = b.Wrap(p)
	b.cells[p.Y][p.X] = k
	switch k {
	case Wall:
		if _, ok := b.wallHP[p]; !ok {
			b.wallHP[p] = InitialWallHP
		}
	default:
		delete(b.wallHP, p)
	}
}

// WallHP returns the remaining hit points of the wall at p, or 0 if
// p is not a Wall cell.
func (b *Board) WallHP(p Point) int {
	return b.wallHP[b.Wrap(p)]
}

// CanMoveTo reports whether a tank or shell may occupy p: any cell
// other than Wall is passable (Mine included — entering one simply
// has a side effect resolved by the collision phase).
func (b *Board) CanMoveTo(p Point) bool {
	return b.Cell(p) != Wall
}

// DamageWall reduces the HP of the wall at p by one hit. It reports
// whether the wall was destroyed by this hit, in which case the cell
// becomes Empty and its HP entry is removed. Calling DamageWall on a
// non-Wall cell is a no-op that reports false.
func (b *Board) DamageWall(p Point) bool {
	p = b.Wrap(p)
	if b.cells[p.Y][p.X] != Wall {
		return false
	}
	hp := b.wallHP[p] - 1
	if hp <= 0 {
		b.cells[p.Y][p.X] = Empty
		delete(b.wallHP, p)
		return true
	}
	b.wallHP[p] = hp
	return false
}

// ConsumeMine clears the Mine at p back to Empty; it is a no-op if p
// is not currently a Mine.
func (b *Board) ConsumeMine(p Point) {
	p = b.Wrap(p)
	if b.cells[p.Y][p.X] == Mine {
		b.cells[p.Y][p.X] = Empty
	}
}

// LineOfSight returns the sequence of cells visited stepping from
// start (exclusive) in direction d with toroidal wrap, stopping at and
// including the first Wall cell. It does not know about tanks; callers
// combine it with tank positions to find the "first tank or wall"
// per the Glossary's line-of-sight definition.
func (b *Board) LineOfSight(start Point, d Direction, maxSteps int) []Point {
	if maxSteps <= 0 {
		maxSteps = b.W + b.H
	}
	delta := d.Delta()
	cells := make([]Point, 0, maxSteps)
	cur := start
	for i := 0; i < maxSteps; i++ {
		cur = b.Wrap(cur.Add(delta))
		cells = append(cells, cur)
		if b.Cell(cur) == Wall {
			break
		}
	}
	return cells
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(%dx%d)", b.W, b.H)
}
