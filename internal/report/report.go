// Package report renders the three CLI output formats from spec.md
// §6: Comparative, Competitive, and Basic mode's verbose per-step
// action log.
package report

import (
	"fmt"
	"strings"

	"github.com/ezynda3/tank-arena/internal/engine"
	"github.com/ezynda3/tank-arena/internal/tournament"
	"github.com/ezynda3/tank-arena/internal/view"
)

// Comparative renders spec.md §6's Comparative output: the three
// input lines, a blank line, then one block per result group.
func Comparative(mapFile, algo1File, algo2File string, groups []tournament.ComparativeResultGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "game_map=%s\n", mapFile)
	fmt.Fprintf(&b, "algorithm1=%s\n", algo1File)
	fmt.Fprintf(&b, "algorithm2=%s\n", algo2File)
	b.WriteString("\n")

	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(g.Engines, ", "))
		b.WriteString("\n")
		b.WriteString(resultLine(g.Result))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d\n", g.Result.Rounds)
		b.WriteString(finalGrid(g.Result))
	}
	return b.String()
}

// Competitive renders spec.md §6's Competitive output: the two input
// lines, a blank line, then one "<algorithm> <score>" line per
// standing in the order given (callers pass standings already sorted
// by descending score).
func Competitive(mapsFolder, gameManagerFile string, standings []tournament.Standing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "game_maps_folder=%s\n", mapsFolder)
	fmt.Fprintf(&b, "game_manager=%s\n", gameManagerFile)
	b.WriteString("\n")
	for _, s := range standings {
		fmt.Fprintf(&b, "%s %d\n", s.Name, s.Score)
	}
	return b.String()
}

// BasicLog renders spec.md §6's Basic per-step log: one line per step
// plus the two trailing summary lines.
func BasicLog(res engine.Result) string {
	var b strings.Builder
	for _, line := range res.StepLog {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Game ended after %d steps\n", res.Rounds)
	fmt.Fprintf(&b, "Result: %s\n", resultLine(res))
	return b.String()
}

// resultLine is the human-readable winner/reason/round-count sentence
// shared by the Comparative block and the Basic log's trailing
// summary, phrased the way the source's checkGameOver() builds
// m_gameResult.
func resultLine(res engine.Result) string {
	switch res.Reason {
	case engine.AllTanksDead:
		if res.Winner == 0 {
			return "Tie, both players have zero tanks"
		}
		return fmt.Sprintf("Player %d won with %d tanks still alive", res.Winner, res.RemainingTanks[res.Winner])
	case engine.ZeroShells:
		return fmt.Sprintf("Tie, both players have zero shells for %d steps", engine.NoShellsGrace)
	case engine.MaxSteps:
		return fmt.Sprintf("Tie, reached max steps = %d, player 1 has %d tanks, player 2 has %d tanks",
			res.Rounds, res.RemainingTanks[1], res.RemainingTanks[2])
	default:
		return "Unknown result"
	}
}

// finalGrid renders the final board, one character per cell, layering
// in surviving shells and tanks with no own-tank marker (spec.md §4.3:
// final-result snapshots omit it, but still show in-flight shells).
func finalGrid(res engine.Result) string {
	if res.FinalBoard == nil {
		return ""
	}
	return view.New(res.FinalBoard, res.FinalTanks, res.FinalShells, nil).String()
}
