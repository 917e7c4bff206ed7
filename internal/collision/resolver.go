// Package collision implements the C5 resolver: given the post-move
// positions of every live tank and shell, it applies the precedence
// rules from spec.md §4.5 in a single sweep and mutates the board,
// tanks, and shells in place.
package collision

import (
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/entity"
)

// Resolve applies one sub-step's worth of collisions. It is invoked
// twice per engine step per spec.md §4.6: once after each shell
// half-advance.
func Resolve(b *board.Board, tanks []*entity.Tank, shells []*entity.Shell) {
	resolveShellVsWall(b, shells)
	resolveShellVsShell(shells)
	resolveShellVsTank(shells, tanks)
	resolveTankVsMine(b, tanks)
	resolveTankVsTank(tanks)
}

// resolveShellVsWall destroys any shell that lands on a Wall cell and
// damages that wall. The wall takes a single hit per sub-step however
// many shells landed on it, and every live shell on that cell is
// destroyed whether or not the wall survives the hit (spec.md §4.5
// rule 1).
func resolveShellVsWall(b *board.Board, shells []*entity.Shell) {
	byCell := make(map[board.Point][]*entity.Shell)
	for _, s := range shells {
		if s.Destroyed {
			continue
		}
		p := b.Wrap(s.Position)
		if b.Cell(p) == board.Wall {
			byCell[p] = append(byCell[p], s)
		}
	}
	for _, group := range byCell {
		// The wall absorbs exactly one hit; every shell that landed
		// here this sub-step is consumed regardless of whether the
		// wall itself survives.
		b.DamageWall(group[0].Position)
		for _, s := range group {
			s.Destroyed = true
		}
	}
}

// resolveShellVsShell destroys every shell that shares a cell with
// another live shell after the sub-step (rule 2).
func resolveShellVsShell(shells []*entity.Shell) {
	byCell := make(map[board.Point][]*entity.Shell)
	for _, s := range shells {
		if s.Destroyed {
			continue
		}
		byCell[s.Position] = append(byCell[s.Position], s)
	}
	for _, group := range byCell {
		if len(group) < 2 {
			continue
		}
		for _, s := range group {
			s.Destroyed = true
		}
	}
}

// resolveShellVsTank destroys a live shell and the live tank it shares
// a cell with (rule 3).
func resolveShellVsTank(shells []*entity.Shell, tanks []*entity.Tank) {
	tanksByCell := make(map[board.Point][]*entity.Tank)
	for _, t := range tanks {
		if !t.Destroyed {
			tanksByCell[t.Position] = append(tanksByCell[t.Position], t)
		}
	}
	for _, s := range shells {
		if s.Destroyed {
			continue
		}
		hit, ok := tanksByCell[s.Position]
		if !ok {
			continue
		}
		s.Destroyed = true
		for _, t := range hit {
			t.Destroyed = true
		}
	}
}

// resolveTankVsMine destroys a tank that entered a Mine cell and
// consumes the mine (rule 4).
func resolveTankVsMine(b *board.Board, tanks []*entity.Tank) {
	for _, t := range tanks {
		if t.Destroyed {
			continue
		}
		if b.Cell(t.Position) == board.Mine {
			t.Destroyed = true
			b.ConsumeMine(t.Position)
		}
	}
}

// resolveTankVsTank destroys every tank in a co-location (two or more
// tanks ending the sub-step on the same cell) — rule 5. Swaps (rule 6)
// are not detected here; they need each tank's pre-move position and
// are handled by ResolveSwaps.
func resolveTankVsTank(tanks []*entity.Tank) {
	byCell := make(map[board.Point][]*entity.Tank)
	for _, t := range tanks {
		if !t.Destroyed {
			byCell[t.Position] = append(byCell[t.Position], t)
		}
	}
	for _, group := range byCell {
		if len(group) < 2 {
			continue
		}
		for _, t := range group {
			t.Destroyed = true
		}
	}
}

// ResolveSwaps destroys any pair of tanks that exchanged cells during
// this sub-step, given each tank's position before the sub-step's
// moves (`before`, keyed by tank pointer identity via index alignment
// with tanks). It must run before positions are reused for the next
// sub-step's `before` snapshot.
func ResolveSwaps(tanks []*entity.Tank, before []board.Point) {
	for i, ti := range tanks {
		if ti.Destroyed {
			continue
		}
		for j := i + 1; j < len(tanks); j++ {
			tj := tanks[j]
			if tj.Destroyed {
				continue
			}
			if ti.Position == before[j] && tj.Position == before[i] && before[i] != before[j] {
				ti.Destroyed = true
				tj.Destroyed = true
			}
		}
	}
}
