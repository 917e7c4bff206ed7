// Package engine implements the C6 simulation engine: the per-step
// state machine that gathers algorithm actions, advances shells at
// twice tank speed, applies tank actions under the backward-latch and
// cooldown rules, resolves collisions twice per step, and decides
// termination.
package engine

import (
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/collision"
	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/entity"
	"github.com/ezynda3/tank-arena/internal/view"
)

// NoShellsGrace is the number of consecutive all-zero-shells steps
// the engine tolerates before declaring a ZeroShells tie. The source
// hardcodes this to 40 regardless of map header contents; DESIGN.md's
// Open Question decisions keep it a fixed engine constant rather than a
// configurable one.
const NoShellsGrace = 40

// Reason is why a game ended.
type Reason int

const (
	AllTanksDead Reason = iota
	MaxSteps
	ZeroShells
)

func (r Reason) String() string {
	switch r {
	case AllTanksDead:
		return "AllTanksDead"
	case MaxSteps:
		return "MaxSteps"
	case ZeroShells:
		return "ZeroShells"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one engine run.
type Result struct {
	Winner         int // 0 = tie
	Reason         Reason
	RemainingTanks map[int]int
	Rounds         int
	FinalBoard     *board.Board
	FinalTanks     []*entity.Tank
	// FinalShells holds every shell still in flight when the game
	// ended, so the final C3 snapshot (spec.md §3, §4.3) layers them
	// into the view the way a mid-game snapshot would.
	FinalShells []*entity.Shell
	// StepLog holds one rendered line per completed step, e.g.
	// "MoveForward, Shoot (ignored)", matching the verbose per-step
	// action log described in SPEC_FULL.md §4.
	StepLog []string
}

// controller pairs a tank with the algorithm driving it and tracks
// per-step bookkeeping needed for the log line.
type controller struct {
	tank          *entity.Tank
	algo          contracts.TankAlgorithm
	player        contracts.Player
	nextAction    contracts.ActionRequest
	actionSuccess bool
	killedLogged  bool
}

// Engine runs a single match to completion.
type Engine struct {
	MaxSteps  int
	NumShells int
	Verbose   bool

	log *log.Logger
}

// New builds an Engine. logger may be nil, in which case a stderr
// logger is used at Info level for a verbose run and at Warn level
// otherwise, so a non-verbose run stays quiet.
func New(maxSteps, numShells int, verbose bool, logger *log.Logger) *Engine {
	if logger == nil {
		level := log.WarnLevel
		if verbose {
			level = log.InfoLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: level})
	}
	return &Engine{MaxSteps: maxSteps, NumShells: numShells, Verbose: verbose, log: logger}
}

// Run drives board b, a set of spawned tanks, and their paired
// algorithms/players to completion and returns the final Result. b and
// tanks are mutated in place; callers that need the pristine inputs
// afterward should pass copies.
func (e *Engine) Run(b *board.Board, tanks []*entity.Tank, algos []contracts.TankAlgorithm, players map[int]contracts.Player) Result {
	controllers := make([]*controller, len(tanks))
	for i, t := range tanks {
		controllers[i] = &controller{tank: t, algo: algos[i], player: players[t.PlayerID]}
	}
	sort.SliceStable(controllers, func(i, j int) bool {
		return controllers[i].tank.PlayerID < controllers[j].tank.PlayerID
	})

	var shells []*entity.Shell
	noShellsSteps := NoShellsGrace
	var stepLog []string
	step := 0

	for {
		step++
		e.gather(b, controllers, shells)

		e.advanceShellsOnce(b, &shells)
		collision.Resolve(b, tanks, shells)

		before := make([]board.Point, len(tanks))
		for i, t := range tanks {
			before[i] = t.Position
		}
		e.applyActions(b, controllers, &shells)
		collision.ResolveSwaps(tanks, before)

		e.advanceShellsOnce(b, &shells)
		collision.Resolve(b, tanks, shells)

		shells = removeDestroyedShells(shells)
		for _, t := range tanks {
			t.Tick()
		}

		stepLog = append(stepLog, renderStepLog(controllers))

		allZero := true
		for _, t := range tanks {
			if !t.Destroyed && t.ShellsLeft > 0 {
				allZero = false
				break
			}
		}
		if allZero {
			noShellsSteps--
		} else {
			noShellsSteps = NoShellsGrace
		}

		if res, done := checkTermination(tanks, step, e.MaxSteps, noShellsSteps); done {
			res.FinalBoard = b
			res.FinalTanks = tanks
			res.FinalShells = shells
			res.StepLog = stepLog
			if e.Verbose {
				e.log.Info("match ended", "rounds", res.Rounds, "reason", res.Reason, "winner", res.Winner)
			}
			return res
		}
	}
}

func (e *Engine) gather(b *board.Board, controllers []*controller, shells []*entity.Shell) {
	for _, c := range controllers {
		if c.tank.Destroyed {
			c.nextAction = contracts.DoNothing
			continue
		}
		c.nextAction = c.algo.GetAction()
	}
}

func (e *Engine) advanceShellsOnce(b *board.Board, shells *[]*entity.Shell) {
	for _, s := range *shells {
		if s.Destroyed {
			continue
		}
		s.Advance(b.W, b.H)
	}
}

func (e *Engine) applyActions(b *board.Board, controllers []*controller, shells *[]*entity.Shell) {
	// Snapshot the pre-move world once so every GetBattleInfo call
	// this step observes the same consistent state, per spec.md §4.6
	// step 4's GetBattleInfo rule.
	snapshotTanks := make([]*entity.Tank, 0, len(controllers))
	for _, c := range controllers {
		if !c.tank.Destroyed {
			snapshot := *c.tank
			snapshotTanks = append(snapshotTanks, &snapshot)
		}
	}
	snapshotShells := append([]*entity.Shell(nil), *shells...)

	for _, c := range controllers {
		t := c.tank
		if t.Destroyed {
			c.actionSuccess = false
			continue
		}
		c.actionSuccess = e.applyOne(b, c, t, snapshotTanks, snapshotShells, shells)
	}
}

func (e *Engine) applyOne(b *board.Board, c *controller, t *entity.Tank, snapshotTanks []*entity.Tank, liveShells []*entity.Shell, shells *[]*entity.Shell) bool {
	switch c.nextAction {
	case contracts.MoveForward:
		// A MoveForward also ends backward mode: the next MoveBackward
		// waits out the full latch again.
		t.LatchHasFired = false
		if t.BackwardLatch > 0 {
			t.CancelBackwardLatch()
			return true
		}
		target := t.NextForward(b.W, b.H)
		if !b.CanMoveTo(target) {
			return false
		}
		t.Position = target
		return true

	case contracts.MoveBackward:
		if t.LatchHasFired {
			target := t.NextBackward(b.W, b.H)
			if !b.CanMoveTo(target) {
				return false
			}
			t.Position = target
			return true
		}
		// Only the tick that starts the latch is reported as a
		// successful action; the ticks spent waiting and the tick that
		// finally performs the deferred move are all "(ignored)" in the
		// log, matching original_source/GameManager/game_manager_test.cpp's
		// ProcessStep_MoveBackward_OnlyMovesOnThirdStep.
		initiating := t.BackwardLatch == 0
		if initiating {
			t.StartBackwardLatch()
		}
		if fired := t.AdvanceBackwardLatch(); fired {
			target := t.NextBackward(b.W, b.H)
			if b.CanMoveTo(target) {
				t.Position = target
			}
		}
		return initiating

	case contracts.RotateLeft45:
		t.RotateLeft45()
		return true
	case contracts.RotateRight45:
		t.RotateRight45()
		return true
	case contracts.RotateLeft90:
		t.RotateLeft90()
		return true
	case contracts.RotateRight90:
		t.RotateRight90()
		return true

	case contracts.Shoot:
		if !t.CanShoot() {
			return false
		}
		t.Shoot()
		*shells = append(*shells, entity.NewShell(t.PlayerID, t.Position, t.Heading))
		return true

	case contracts.GetBattleInfo:
		if t.BackwardLatch > 0 {
			t.AdvanceBackwardLatch()
			return false
		}
		if c.player != nil {
			v := view.New(b, snapshotTanks, liveShells, t)
			c.player.UpdateTankWithBattleInfo(c.algo, v)
		}
		return true

	case contracts.DoNothing:
		return true

	default:
		return false
	}
}

func removeDestroyedShells(shells []*entity.Shell) []*entity.Shell {
	out := shells[:0]
	for _, s := range shells {
		if !s.Destroyed {
			out = append(out, s)
		}
	}
	return out
}

func renderStepLog(controllers []*controller) string {
	line := ""
	for i, c := range controllers {
		if i > 0 {
			line += ", "
		}
		switch {
		case c.tank.Destroyed && !c.killedLogged:
			line += c.nextAction.String() + " (killed)"
			c.killedLogged = true
		case c.tank.Destroyed:
			line += "Killed"
		case !c.actionSuccess:
			line += c.nextAction.String() + " (ignored)"
		default:
			line += c.nextAction.String()
		}
	}
	return line
}

// checkTermination mirrors spec.md §4.6's ordered termination checks.
func checkTermination(tanks []*entity.Tank, step, maxSteps, noShellsSteps int) (Result, bool) {
	alive := map[int]int{}
	for _, t := range tanks {
		if !t.Destroyed {
			alive[t.PlayerID]++
		}
	}

	remaining := map[int]int{}
	for _, t := range tanks {
		if _, ok := remaining[t.PlayerID]; !ok {
			remaining[t.PlayerID] = 0
		}
	}
	for pid, n := range alive {
		remaining[pid] = n
	}

	playersWithTanks := 0
	winner := 0
	for pid, n := range alive {
		if n > 0 {
			playersWithTanks++
			winner = pid
		}
	}

	switch {
	case playersWithTanks == 1:
		return Result{Winner: winner, Reason: AllTanksDead, RemainingTanks: remaining, Rounds: step}, true
	case playersWithTanks == 0:
		return Result{Winner: 0, Reason: AllTanksDead, RemainingTanks: remaining, Rounds: step}, true
	case noShellsSteps <= 0:
		return Result{Winner: 0, Reason: ZeroShells, RemainingTanks: remaining, Rounds: step}, true
	case step >= maxSteps:
		return Result{Winner: 0, Reason: MaxSteps, RemainingTanks: remaining, Rounds: step}, true
	default:
		return Result{}, false
	}
}
