// Package cliapp implements the tankarena CLI: a single cobra command
// that inspects its `key=value` tokens to decide which of the three
// modes from spec.md §6 to run (Basic, Comparative, Competitive), so
// the existing tokens need not be rearranged into dashed flags.
package cliapp

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

var rootCmd = &cobra.Command{
	Use:   "tankarena",
	Short: "Run and rank tank-combat algorithms",
	Long: `tankarena simulates discrete-time tank battles on a toroidal grid
and scores the algorithms that control the tanks.

Three modes, selected by which key=value tokens are present:

  Basic:        game_map=<file> game_manager=<plugin> algorithm1=<plugin> algorithm2=<plugin> [verbose]
  Comparative:  game_map=<file> game_managers_folder=<dir> algorithm1=<plugin> algorithm2=<plugin> [num_threads=<n>] [verbose]
  Competitive:  game_maps_folder=<dir> game_manager=<plugin> algorithms_folder=<dir> [num_threads=<n>] [verbose]`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               run,
}

// Execute runs the root command and exits the process with 0 on
// success or 1 on any failure, per spec.md §6's exit-code contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tankarena:", err)
		os.Exit(1)
	}
}

// tokens is a parsed set of `key=value` CLI tokens plus any bare
// flag-like tokens (currently only "verbose").
type tokens struct {
	values  map[string]string
	verbose bool
}

func parseTokens(args []string) (tokens, error) {
	t := tokens{values: map[string]string{}}
	for _, a := range args {
		if a == "verbose" {
			t.verbose = true
			continue
		}
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return t, fmt.Errorf("unrecognized argument %q (expected key=value or \"verbose\")", a)
		}
		t.values[k] = v
	}
	return t, nil
}

func (t tokens) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := t.values[k]; !ok {
			return false
		}
	}
	return true
}

func run(cmd *cobra.Command, args []string) error {
	t, err := parseTokens(args)
	if err != nil {
		return err
	}
	if t.verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	switch {
	case t.has("game_map", "game_manager", "algorithm1", "algorithm2"):
		return runBasic(t)
	case t.has("game_map", "game_managers_folder", "algorithm1", "algorithm2"):
		return runComparative(t)
	case t.has("game_maps_folder", "game_manager", "algorithms_folder"):
		return runCompetitive(t)
	default:
		return fmt.Errorf("insufficient parameters for any mode; see --help")
	}
}
