package board

import "fmt"

// TankSpawn records a tank found while parsing a character grid: its
// player ID (the digit 1-9) and its starting position in spawn order.
type TankSpawn struct {
	PlayerID int
	Position Point
}

// ParseGrid builds a Board from rows of board characters as defined by
// the map file format: '#' -> Wall (HP InitialWallHP), '@' -> Mine,
// '1'..'9' -> Empty plus a reported spawn, space -> Empty, anything
// else -> Empty with a warning. Rows shorter than w are padded with
// space; rows beyond h, or columns beyond w, are ignored (also
// reported as warnings so callers can surface them).
//
// ParseGrid never fails on its own; it is the caller's responsibility
// (mapfile.Load) to reject a grid that yields zero tank spawns.
func ParseGrid(rows []string, w, h int) (*Board, []TankSpawn, []string) {
	b := New(w, h)
	var spawns []TankSpawn
	var warnings []string

	if len(rows) < h {
		warnings = append(warnings, fmt.Sprintf("expected %d rows, found %d; padding with empty rows", h, len(rows)))
	} else if len(rows) > h {
		warnings = append(warnings, fmt.Sprintf("expected %d rows, found %d; extra rows ignored", h, len(rows)))
	}

	for y := 0; y < h; y++ {
		var row string
		if y < len(rows) {
			row = rows[y]
		}
		if len(row) < w {
			warnings = append(warnings, fmt.Sprintf("row %d shorter than %d columns; padded with spaces", y, w))
		} else if len(row) > w {
			warnings = append(warnings, fmt.Sprintf("row %d longer than %d columns; extra columns ignored", y, w))
		}
		for x := 0; x < w; x++ {
			var ch byte = ' '
			if x < len(row) {
				ch = row[x]
			}
			p := Point{X: x, Y: y}
			switch {
			case ch == '#':
				b.SetCell(p, Wall)
			case ch == '@':
				b.SetCell(p, Mine)
			case ch >= '1' && ch <= '9':
				b.SetCell(p, Empty)
				spawns = append(spawns, TankSpawn{PlayerID: int(ch - '0'), Position: p})
			case ch == ' ':
				b.SetCell(p, Empty)
			default:
				b.SetCell(p, Empty)
				warnings = append(warnings, fmt.Sprintf("unknown character %q at row %d col %d; treated as empty", ch, y, x))
			}
		}
	}

	return b, spawns, warnings
}
