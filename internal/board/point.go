// Package board implements the toroidal grid: points, headings, cell
// kinds, and wall hit points that the rest of the simulator builds on.
package board

import "fmt"

// Point is an integer grid coordinate. Values stored in a Board or in
// entity records are always pre-wrapped; arithmetic on raw Points may
// produce out-of-range values that must be passed through Wrap before
// use as a board index.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns the component-wise difference of p and o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Less gives Point a total order so it can be used as a sort key; it is
// not used for map keys (Point is already comparable and usable as one).
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Wrap reduces p into [0,W)x[0,H) on a toroidal board of the given
// dimensions.
func Wrap(p Point, w, h int) Point {
	return Point{X: mod(p.X, w), Y: mod(p.Y, h)}
}

func mod(v, m int) int {
	if m <= 0 {
		return 0
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// StepDistance is the Chebyshev distance between a and b on a toroidal
// board, i.e. the number of single-cell king-moves (including
// diagonals) needed to go from one to the other ignoring obstacles.
func StepDistance(a, b Point, w, h int) int {
	dx := absWrap(a.X-b.X, w)
	dy := absWrap(a.Y-b.Y, h)
	return max(dx, dy)
}

func absWrap(d, m int) int {
	if d < 0 {
		d = -d
	}
	if m-d < d {
		return m - d
	}
	return d
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
