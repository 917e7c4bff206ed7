package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezynda3/tank-arena/internal/algo"
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/engine"
	"github.com/ezynda3/tank-arena/internal/mapfile"
	"github.com/ezynda3/tank-arena/internal/match"
)

// S5: for N=4 algorithms and maps k=0,1,2, the union of dedup'd
// unordered pairs equals the complete 6-pair round robin, and no pair
// (i, i) is ever produced.
func TestPairingFormulaCoversFullRoundRobin(t *testing.T) {
	const n = 4
	seen := map[[2]int]bool{}
	for k := 0; k < 3; k++ {
		for _, pair := range pairingsFor(k, n) {
			assert.NotEqual(t, pair[0], pair[1], "pairingsFor must never pair an algorithm with itself")
			seen[pair] = true
		}
	}

	var want [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			want = append(want, [2]int{i, j})
		}
	}
	require.Len(t, seen, len(want))
	for _, pair := range want {
		assert.True(t, seen[pair], "expected pair %v in the round robin", pair)
	}
}

func walledArena(w, h int) *board.Board {
	b := board.New(w, h)
	for x := 0; x < w; x++ {
		b.SetCell(board.Point{X: x, Y: 0}, board.Wall)
		b.SetCell(board.Point{X: x, Y: h - 1}, board.Wall)
	}
	for y := 0; y < h; y++ {
		b.SetCell(board.Point{X: 0, Y: y}, board.Wall)
		b.SetCell(board.Point{X: w - 1, Y: y}, board.Wall)
	}
	return b
}

func doNothingSide(name string) match.Side {
	return match.Side{
		Name:      name,
		Algorithm: algo.NewDoNothingTankAlgorithm,
		Player:    algo.NewNoOpPlayer,
	}
}

// S6: running the same match concurrently across a worker pool
// produces bit-identical GameResult tuples every time, since the
// engine itself is single-threaded and deterministic per match.
func TestConcurrentRunsProduceIdenticalResults(t *testing.T) {
	m := &mapfile.Map{
		Name:      "S6",
		MaxSteps:  5,
		NumShells: 10,
		Board:     walledArena(5, 5),
		Spawns: []board.TankSpawn{
			{PlayerID: 1, Position: board.Point{X: 1, Y: 1}},
			{PlayerID: 2, Position: board.Point{X: 3, Y: 1}},
		},
	}

	const runs = 100
	engines := make([]EngineSpec, runs)
	for i := range engines {
		engines[i] = EngineSpec{
			Name: string(rune('a' + i%26)),
			Factory: func(verbose bool) *engine.Engine {
				return engine.New(0, 0, verbose, nil)
			},
		}
	}

	groups, err := RunComparative(m, doNothingSide("p1"), doNothingSide("p2"), engines, 8, false)
	require.NoError(t, err)
	require.Len(t, groups, 1, "every run of an identical deterministic match must land in one outcome group")
	assert.Len(t, groups[0].Engines, runs)
	assert.Equal(t, 0, groups[0].Result.Winner)
	assert.Equal(t, engine.MaxSteps, groups[0].Result.Reason)
	assert.Equal(t, 5, groups[0].Result.Rounds)
}
