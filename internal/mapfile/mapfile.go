// Package mapfile loads the human-readable map file format from
// spec.md §6: five header lines (name, MaxSteps, NumShells, Rows,
// Cols) followed by the board rows themselves.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/simerr"
)

// Map is a fully parsed map file: its board, tank spawns, and the
// header's numeric parameters.
type Map struct {
	Name      string
	MaxSteps  int
	NumShells int
	Board     *board.Board
	Spawns    []board.TankSpawn
}

// Load reads and parses the map file at path. Validation warnings
// (padding, unknown characters) are appended to collector rather than
// failing the load; a zero-tank board fails outright, per spec.md §6,
// as do an unreadable file and a missing or malformed header.
func Load(path string) (*Map, *simerr.Collector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening map file %q: %v", simerr.ErrInput, path, err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a map file from r. name is used only in error messages;
// the returned Collector prefixes its warnings with the map's own name
// from the first header line.
func Parse(r io.Reader, name string) (*Map, *simerr.Collector, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: reading map file %q: %v", simerr.ErrInput, name, err)
	}
	if len(lines) < 5 {
		return nil, nil, fmt.Errorf("%w: map file %q has fewer than 5 header lines", simerr.ErrInput, name)
	}

	mapName := lines[0]
	collector := simerr.NewCollector(mapName)

	maxSteps, err := parseHeaderInt(lines[1], "MaxSteps")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", simerr.ErrInput, name, err)
	}
	numShells, err := parseHeaderInt(lines[2], "NumShells")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", simerr.ErrInput, name, err)
	}
	rows, err := parseHeaderInt(lines[3], "Rows")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", simerr.ErrInput, name, err)
	}
	cols, err := parseHeaderInt(lines[4], "Cols")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", simerr.ErrInput, name, err)
	}

	var boardRows []string
	if len(lines) > 5 {
		boardRows = lines[5:]
	}

	b, spawns, warnings := board.ParseGrid(boardRows, cols, rows)
	collector.AddAll(warnings)

	if len(spawns) == 0 {
		return nil, collector, fmt.Errorf("%w: map %q has zero tanks", simerr.ErrInput, mapName)
	}

	return &Map{
		Name:      mapName,
		MaxSteps:  maxSteps,
		NumShells: numShells,
		Board:     b,
		Spawns:    spawns,
	}, collector, nil
}

// parseHeaderInt parses a "key = value" line, requiring the given key
// name and a non-negative decimal value.
func parseHeaderInt(line, key string) (int, error) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected %q header line, got %q", key, line)
	}
	gotKey := strings.TrimSpace(parts[0])
	if gotKey != key {
		return 0, fmt.Errorf("expected header key %q, got %q", key, gotKey)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("expected non-negative integer for %q, got %q", key, strings.TrimSpace(parts[1]))
	}
	return v, nil
}
