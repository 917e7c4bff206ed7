package cliapp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ezynda3/tank-arena/internal/bootstrap"
	"github.com/ezynda3/tank-arena/internal/mapfile"
	"github.com/ezynda3/tank-arena/internal/match"
	"github.com/ezynda3/tank-arena/internal/report"
)

// runBasic loads one map, resolves one engine and two algorithms by
// name, runs a single match, and (when verbose) writes the per-step
// action log to a timestamped file in the working directory.
func runBasic(t tokens) error {
	m, collector, err := mapfile.Load(t.values["game_map"])
	if err != nil {
		return err
	}
	if !collector.Empty() {
		logger.Warn("map validation warnings", "map", m.Name, "warnings", collector.Warnings())
	}

	engines, err := bootstrap.Engines()
	if err != nil {
		return fmt.Errorf("loading engine plugins: %w", err)
	}
	engineFactory, ok := engines.Lookup(t.values["game_manager"])
	if !ok {
		return fmt.Errorf("unknown game_manager %q", t.values["game_manager"])
	}

	algos, err := bootstrap.Algorithms()
	if err != nil {
		return fmt.Errorf("loading algorithm plugins: %w", err)
	}
	p1, t1, ok := algos.Lookup(t.values["algorithm1"])
	if !ok {
		return fmt.Errorf("unknown algorithm1 %q", t.values["algorithm1"])
	}
	p2, t2, ok := algos.Lookup(t.values["algorithm2"])
	if !ok {
		return fmt.Errorf("unknown algorithm2 %q", t.values["algorithm2"])
	}

	eng := engineFactory(t.verbose)
	eng.MaxSteps = m.MaxSteps
	eng.NumShells = m.NumShells
	cfg := match.Config{
		Board: m.Board, Spawns: m.Spawns, MapName: m.Name,
		MaxSteps: m.MaxSteps, NumShells: m.NumShells,
		P1: match.Side{Name: t.values["algorithm1"], Algorithm: t1, Player: p1},
		P2: match.Side{Name: t.values["algorithm2"], Algorithm: t2, Player: p2},
		Verbose: t.verbose, Logger: logger,
	}
	res, err := match.RunWithEngine(cfg, eng)
	if err != nil {
		return err
	}

	rendered := report.BasicLog(res)
	fmt.Println(rendered)

	if t.verbose {
		filename := basicLogFilename(t.values["algorithm1"], t.values["algorithm2"], m.Name)
		if err := os.WriteFile(filename, []byte(rendered), 0o644); err != nil {
			logger.Warn("could not write verbose action log, continuing without it", "file", filename, "err", err)
		}
		if !collector.Empty() {
			if err := collector.Dump(filepath.Base(filename) + ".warnings"); err != nil {
				logger.Warn("could not write map warnings dump", "err", err)
			}
		}
	}
	return nil
}
