// Package match implements the C7 match runner: it wires a board, two
// algorithm factories, and two player factories into a fresh Engine
// and runs one game to completion.
package match

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/engine"
	"github.com/ezynda3/tank-arena/internal/entity"
)

// Side bundles the two factories a match runner needs for one player:
// one TankAlgorithm per tank, and a single Player coordinating them.
type Side struct {
	Name      string
	Algorithm contracts.TankAlgorithmFactory
	Player    contracts.PlayerFactory
}

// Config is everything one engine run needs. Board and Spawns come
// from mapfile.Load; MaxSteps and NumShells come from the map header.
type Config struct {
	Board     *board.Board
	Spawns    []board.TankSpawn
	MapName   string
	MaxSteps  int
	NumShells int
	P1, P2    Side
	Verbose   bool
	Logger    *log.Logger
}

// Run builds tanks from the spawn list, a per-tank algorithm and a
// per-player Player for each side, and drives one Engine run to
// completion. Tanks are created in spawn order, matching spec.md
// §4.6's "player id ascending, then spawn order" ordering guarantee.
func Run(cfg Config) (engine.Result, error) {
	eng := engine.New(cfg.MaxSteps, cfg.NumShells, cfg.Verbose, cfg.Logger)
	return RunWithEngine(cfg, eng)
}

// RunWithEngine is Run with the Engine supplied by the caller instead
// of built from cfg, for Comparative mode where several distinct
// engine implementations run the same match.
func RunWithEngine(cfg Config, eng *engine.Engine) (engine.Result, error) {
	if len(cfg.Spawns) == 0 {
		return engine.Result{}, fmt.Errorf("match: map %q has no tank spawns", cfg.MapName)
	}

	tankCounts := map[int]int{}
	for _, sp := range cfg.Spawns {
		tankCounts[sp.PlayerID]++
	}

	sides := map[int]Side{1: cfg.P1, 2: cfg.P2}
	players := make(map[int]contracts.Player, len(tankCounts))
	for pid, n := range tankCounts {
		side, ok := sides[pid]
		if !ok {
			return engine.Result{}, fmt.Errorf("match: map %q spawns unknown player %d", cfg.MapName, pid)
		}
		players[pid] = side.Player(pid, n)
	}

	tanks := make([]*entity.Tank, 0, len(cfg.Spawns))
	algos := make([]contracts.TankAlgorithm, 0, len(cfg.Spawns))
	tankIndex := map[int]int{}
	for _, sp := range cfg.Spawns {
		side := sides[sp.PlayerID]
		idx := tankIndex[sp.PlayerID]
		tankIndex[sp.PlayerID] = idx + 1

		heading := initialHeading(sp.PlayerID)
		tanks = append(tanks, entity.NewTank(sp.PlayerID, sp.Position, heading, cfg.NumShells))
		algos = append(algos, side.Algorithm(sp.PlayerID, idx))
	}

	boardCopy := copyBoard(cfg.Board)
	return eng.Run(boardCopy, tanks, algos, players), nil
}

// initialHeading gives player 1 a westward start and player 2 an
// eastward one, matching the two-player assumption baked into the
// reference algorithms (see algo.initialDirection).
func initialHeading(playerID int) board.Direction {
	if playerID == 2 {
		return board.East
	}
	return board.West
}

// copyBoard deep-copies a board so a match run never mutates the
// caller's loaded map, letting a tournament reuse one parsed board
// across many games.
func copyBoard(b *board.Board) *board.Board {
	out := board.New(b.W, b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := board.Point{X: x, Y: y}
			out.SetCell(p, b.Cell(p))
		}
	}
	return out
}
