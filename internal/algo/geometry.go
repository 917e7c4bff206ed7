package algo

import "github.com/ezynda3/tank-arena/internal/board"

var allDirections = [8]board.Direction{
	board.North, board.NorthEast, board.East, board.SouthEast,
	board.South, board.SouthWest, board.West, board.NorthWest,
}

func containsPoint(pts []board.Point, p board.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// rotationSteps returns the number of 45-degree turns in each
// direction needed to go from cur to target, (left, right).
func rotationSteps(cur, target board.Direction) (left, right int) {
	d := cur
	for d != target && left < 8 {
		d = d.RotatedLeft45()
		left++
	}
	d = cur
	for d != target && right < 8 {
		d = d.RotatedRight45()
		right++
	}
	return left, right
}
