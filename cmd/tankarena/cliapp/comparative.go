package cliapp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezynda3/tank-arena/internal/bootstrap"
	"github.com/ezynda3/tank-arena/internal/mapfile"
	"github.com/ezynda3/tank-arena/internal/match"
	"github.com/ezynda3/tank-arena/internal/report"
	"github.com/ezynda3/tank-arena/internal/tournament"
)

// runComparative loads one map and one algorithm pair, resolves every
// engine plugin named by a file in game_managers_folder, runs all of
// them on the same map and pairing in parallel, and prints the
// grouped-by-outcome report.
func runComparative(t tokens) error {
	m, collector, err := mapfile.Load(t.values["game_map"])
	if err != nil {
		return err
	}
	if !collector.Empty() {
		logger.Warn("map validation warnings", "map", m.Name, "warnings", collector.Warnings())
	}

	entries, err := os.ReadDir(t.values["game_managers_folder"])
	if err != nil {
		return fmt.Errorf("reading game_managers_folder: %w", err)
	}

	registered, err := bootstrap.Engines()
	if err != nil {
		return fmt.Errorf("loading engine plugins: %w", err)
	}

	var engines []tournament.EngineSpec
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		factory, ok := registered.Lookup(name)
		if !ok {
			logger.Warn("skipping unresolvable game_manager plugin", "file", e.Name())
			continue
		}
		engines = append(engines, tournament.EngineSpec{Name: e.Name(), Factory: factory})
	}
	if len(engines) == 0 {
		return fmt.Errorf("no usable game_manager plugins found in %q", t.values["game_managers_folder"])
	}

	algos, err := bootstrap.Algorithms()
	if err != nil {
		return fmt.Errorf("loading algorithm plugins: %w", err)
	}
	p1, ta1, ok := algos.Lookup(t.values["algorithm1"])
	if !ok {
		return fmt.Errorf("unknown algorithm1 %q", t.values["algorithm1"])
	}
	p2, ta2, ok := algos.Lookup(t.values["algorithm2"])
	if !ok {
		return fmt.Errorf("unknown algorithm2 %q", t.values["algorithm2"])
	}

	groups, err := tournament.RunComparative(
		m,
		match.Side{Name: t.values["algorithm1"], Algorithm: ta1, Player: p1},
		match.Side{Name: t.values["algorithm2"], Algorithm: ta2, Player: p2},
		engines, t.numThreads(), t.verbose,
	)
	if err != nil {
		return err
	}

	fmt.Print(report.Comparative(t.values["game_map"], t.values["algorithm1"], t.values["algorithm2"], groups))
	return nil
}
