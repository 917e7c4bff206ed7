package entity

import "github.com/ezynda3/tank-arena/internal/board"

// Shell is an in-flight projectile. It moves two cells per simulation
// step (one per sub-phase) and is removed once Destroyed is set and
// the step's cleanup phase runs.
type Shell struct {
	PlayerID  int
	Position  board.Point
	Heading   board.Direction
	Destroyed bool
}

// NewShell creates a shell at the firing tank's current cell and
// heading.
func NewShell(playerID int, pos board.Point, heading board.Direction) *Shell {
	return &Shell{PlayerID: playerID, Position: pos, Heading: heading}
}

// Advance moves the shell one cell forward along its heading, wrapping
// at the board edges.
func (s *Shell) Advance(w, h int) {
	s.Position = board.Wrap(s.Position.Add(s.Heading.Delta()), w, h)
}
