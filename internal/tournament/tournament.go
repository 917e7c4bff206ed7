// Package tournament implements the C8 scheduler: Comparative mode
// (one map/pair, many engines, grouped by identical outcome) and
// Competitive mode (many maps/algorithms, round-robin-style pairing,
// win/tie/loss scoring), both dispatched over a bounded worker pool.
package tournament

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ezynda3/tank-arena/internal/engine"
	"github.com/ezynda3/tank-arena/internal/mapfile"
	"github.com/ezynda3/tank-arena/internal/match"
	"github.com/ezynda3/tank-arena/internal/view"
)

// pool runs tasks with at most `workers` concurrent, or synchronously
// on the caller's goroutine when workers <= 1, matching spec.md §5's
// single-threaded degeneration mode.
type pool struct {
	workers int
}

func (p pool) run(tasks []func() error) error {
	if p.workers <= 1 {
		for _, t := range tasks {
			if err := t(); err != nil {
				return err
			}
		}
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(p.workers)
	for _, t := range tasks {
		g.Go(t)
	}
	return g.Wait()
}

// EngineSpec names one engine implementation under test, for
// Comparative mode.
type EngineSpec struct {
	Name    string
	Factory func(verbose bool) *engine.Engine
}

// ComparativeResultGroup is one bucket of engines that produced a
// bit-identical outcome.
type ComparativeResultGroup struct {
	Engines []string
	Result  engine.Result
}

// outcomeKey captures the fields spec.md §4.8 says must match for two
// engines' results to be grouped together: winner, reason, rounds,
// and the final board's rendered grid.
type outcomeKey struct {
	winner int
	reason engine.Reason
	rounds int
	grid   string
}

func keyOf(r engine.Result) outcomeKey {
	grid := ""
	if r.FinalBoard != nil {
		grid = renderFinalGrid(r)
	}
	return outcomeKey{winner: r.Winner, reason: r.Reason, rounds: r.Rounds, grid: grid}
}

// renderFinalGrid renders the final board plus surviving tanks as a
// character grid, the same representation spec.md §4.8 means by
// "final_state" when comparing two engines' outcomes for equivalence.
func renderFinalGrid(r engine.Result) string {
	return view.New(r.FinalBoard, r.FinalTanks, r.FinalShells, nil).String()
}

// RunComparative runs one map with one algorithm pair across several
// engine implementations in parallel and groups results by identical
// outcome.
func RunComparative(m *mapfile.Map, p1, p2 match.Side, engines []EngineSpec, workers int, verbose bool) ([]ComparativeResultGroup, error) {
	results := make([]engine.Result, len(engines))
	errs := make([]error, len(engines))

	tasks := make([]func() error, len(engines))
	for i, es := range engines {
		i, es := i, es
		tasks[i] = func() error {
			cfg := match.Config{
				Board: m.Board, Spawns: m.Spawns, MapName: m.Name,
				MaxSteps: m.MaxSteps, NumShells: m.NumShells,
				P1: p1, P2: p2, Verbose: verbose,
			}
			res, err := runWithEngine(cfg, es.Factory)
			results[i] = res
			errs[i] = err
			return nil // a single engine's failure becomes an error result, not a pool abort
		}
	}
	if err := (pool{workers: workers}).run(tasks); err != nil {
		return nil, err
	}

	groups := map[outcomeKey]*ComparativeResultGroup{}
	var order []outcomeKey
	for i, es := range engines {
		if errs[i] != nil {
			continue
		}
		k := keyOf(results[i])
		g, ok := groups[k]
		if !ok {
			g = &ComparativeResultGroup{Result: results[i]}
			groups[k] = g
			order = append(order, k)
		}
		g.Engines = append(g.Engines, es.Name)
	}

	out := make([]ComparativeResultGroup, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out, nil
}

// runWithEngine builds a fresh Engine from factory, applying cfg's
// step/shell limits, and runs cfg's match on it.
func runWithEngine(cfg match.Config, factory func(verbose bool) *engine.Engine) (engine.Result, error) {
	eng := factory(cfg.Verbose)
	eng.MaxSteps = cfg.MaxSteps
	eng.NumShells = cfg.NumShells
	return match.RunWithEngine(cfg, eng)
}

// AlgorithmEntry is one competitor in a Competitive tournament.
type AlgorithmEntry struct {
	Name string
	Side match.Side
}

// Standing is one algorithm's final score.
type Standing struct {
	Name  string
	Score int
}

// pairingsFor returns the deduplicated unordered pairs for map index k
// over n algorithms, per spec.md §4.8's formula.
func pairingsFor(k, n int) [][2]int {
	seen := map[[2]int]bool{}
	var out [][2]int
	for i := 0; i < n; i++ {
		j := (i + 1 + k%(n-1)) % n
		pair := [2]int{i, j}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if pair[0] == pair[1] || seen[pair] {
			continue
		}
		seen[pair] = true
		out = append(out, pair)
	}
	return out
}

// RunCompetitive runs every map against every pairing generated by
// pairingsFor, using one shared engine factory, and returns final
// standings sorted by descending score.
func RunCompetitive(maps []*mapfile.Map, algos []AlgorithmEntry, engineFactory func(verbose bool) *engine.Engine, workers int, verbose bool) ([]Standing, error) {
	n := len(algos)
	if n < 2 {
		return nil, fmt.Errorf("tournament: competitive mode needs at least 2 algorithms, got %d", n)
	}

	scores := make([]int, n)
	var mu sync.Mutex

	var tasks []func() error
	for k, m := range maps {
		m := m
		for _, pair := range pairingsFor(k, n) {
			i, j := pair[0], pair[1]
			tasks = append(tasks, func() error {
				cfg := match.Config{
					Board: m.Board, Spawns: m.Spawns, MapName: m.Name,
					MaxSteps: m.MaxSteps, NumShells: m.NumShells,
					P1: algos[i].Side, P2: algos[j].Side, Verbose: verbose,
				}
				res, err := runWithEngine(cfg, engineFactory)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					// a task fault never aborts the tournament
					return nil
				}
				switch res.Winner {
				case 1:
					scores[i] += 3
				case 2:
					scores[j] += 3
				default:
					scores[i]++
					scores[j]++
				}
				return nil
			})
		}
	}

	if err := (pool{workers: workers}).run(tasks); err != nil {
		return nil, err
	}

	standings := make([]Standing, n)
	for i, a := range algos {
		standings[i] = Standing{Name: a.Name, Score: scores[i]}
	}
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Score > standings[j].Score })
	return standings, nil
}
