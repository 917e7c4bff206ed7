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

// runCompetitive loads every map in game_maps_folder, resolves every
// algorithm plugin named by a file in algorithms_folder, runs the
// pairing schedule from spec.md §4.8 across all of them with a single
// engine, and prints final standings. A plugin that fails to resolve
// is skipped with a warning rather than aborting the run, so the
// tournament proceeds as long as at least 2 algorithms remain.
func runCompetitive(t tokens) error {
	mapEntries, err := os.ReadDir(t.values["game_maps_folder"])
	if err != nil {
		return fmt.Errorf("reading game_maps_folder: %w", err)
	}
	var maps []*mapfile.Map
	for _, e := range mapEntries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(t.values["game_maps_folder"], e.Name())
		m, collector, err := mapfile.Load(path)
		if err != nil {
			logger.Warn("skipping unloadable map", "file", e.Name(), "err", err)
			continue
		}
		if !collector.Empty() {
			logger.Warn("map validation warnings", "map", m.Name, "warnings", collector.Warnings())
		}
		maps = append(maps, m)
	}
	if len(maps) == 0 {
		return fmt.Errorf("no usable maps found in %q", t.values["game_maps_folder"])
	}

	engines, err := bootstrap.Engines()
	if err != nil {
		return fmt.Errorf("loading engine plugins: %w", err)
	}
	engineFactory, ok := engines.Lookup(t.values["game_manager"])
	if !ok {
		return fmt.Errorf("unknown game_manager %q", t.values["game_manager"])
	}

	algoEntries, err := os.ReadDir(t.values["algorithms_folder"])
	if err != nil {
		return fmt.Errorf("reading algorithms_folder: %w", err)
	}
	registered, err := bootstrap.Algorithms()
	if err != nil {
		return fmt.Errorf("loading algorithm plugins: %w", err)
	}

	var entries []tournament.AlgorithmEntry
	for _, e := range algoEntries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		player, algoFactory, ok := registered.Lookup(name)
		if !ok {
			logger.Warn("skipping unresolvable algorithm plugin", "file", e.Name())
			continue
		}
		entries = append(entries, tournament.AlgorithmEntry{
			Name: name,
			Side: match.Side{Name: name, Algorithm: algoFactory, Player: player},
		})
	}
	if len(entries) < 2 {
		return fmt.Errorf("competitive mode needs at least 2 usable algorithm plugins, found %d", len(entries))
	}

	standings, err := tournament.RunCompetitive(maps, entries, engineFactory, t.numThreads(), t.verbose)
	if err != nil {
		return err
	}

	fmt.Print(report.Competitive(t.values["game_maps_folder"], t.values["game_manager"], standings))
	return nil
}
