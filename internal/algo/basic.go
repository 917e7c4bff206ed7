package algo

import (
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/contracts"
)

// BasicTankAlgorithm is the "defensive" reference algorithm from
// spec.md §4.4: it refreshes its battle info every 4th step, dodges
// shells it tracks as incoming, shoots an enemy in its sights, and
// otherwise drifts toward the nearest safe cell. It tracks the game
// state itself between refreshes rather than querying the engine.
type BasicTankAlgorithm struct {
	playerID  int
	tankIndex int

	trackedPosition  board.Point
	trackedDirection board.Direction
	trackedShells    int
	trackedCooldown  int
	turnsSinceUpdate int

	width, height int
	cells         [][]board.CellKind
	enemyTanks    []board.Point
	friendlyTanks []board.Point
	shells        []board.Point
}

// NewBasicTankAlgorithm satisfies contracts.TankAlgorithmFactory.
func NewBasicTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return newBasicTankAlgorithm(playerID, tankIndex)
}

func newBasicTankAlgorithm(playerID, tankIndex int) *BasicTankAlgorithm {
	return &BasicTankAlgorithm{
		playerID:         playerID,
		tankIndex:        tankIndex,
		trackedDirection: initialDirection(playerID),
		turnsSinceUpdate: 4, // forces an immediate GetBattleInfo
	}
}

// initialDirection is the algorithm's best guess at its own heading
// before the first BattleInfo arrives. The source only ever ran two
// players; player 1 starts facing west, player 2 east, and any other
// player ID falls back to west.
func initialDirection(playerID int) board.Direction {
	if playerID == 2 {
		return board.East
	}
	return board.West
}

func (a *BasicTankAlgorithm) GetAction() contracts.ActionRequest {
	a.turnsSinceUpdate++
	action := a.getActionToSafePosition()

	switch {
	case a.turnsSinceUpdate > 3:
		action = contracts.GetBattleInfo
	case a.isInDangerFromShellsAt(a.trackedPosition):
		// keep the safe-position action already chosen
	case a.canShootEnemy():
		action = contracts.Shoot
	}

	a.updateState(action)
	return action
}

func (a *BasicTankAlgorithm) UpdateBattleInfo(info *contracts.BattleInfo) {
	a.turnsSinceUpdate = 0
	a.trackedPosition = info.OwnPosition
	a.width, a.height = info.Width, info.Height
	a.cells = info.Cells
	a.enemyTanks = info.EnemyTanks
	a.friendlyTanks = info.FriendlyTanks
	a.shells = info.Shells
}

func (a *BasicTankAlgorithm) canShootEnemy() bool {
	for _, enemy := range a.enemyTanks {
		if a.checkLineOfSight(a.trackedPosition, enemy, a.trackedDirection) {
			return true
		}
	}
	return false
}

func (a *BasicTankAlgorithm) getLineOfSightDirection(from, to board.Point) (board.Direction, bool) {
	for _, dir := range allDirections {
		if a.checkLineOfSight(from, to, dir) {
			return dir, true
		}
	}
	return 0, false
}

// checkLineOfSight walks from `from` in direction dir, wrapping each
// step, and reports whether `to` is reached before a Wall or a known
// tank blocks the path.
func (a *BasicTankAlgorithm) checkLineOfSight(from, to board.Point, dir board.Direction) bool {
	if from == to {
		return true
	}
	if a.width == 0 || a.height == 0 {
		return false
	}
	current := from
	delta := dir.Delta()
	maxSteps := a.width + a.height
	for step := 0; step < maxSteps; step++ {
		current = board.Wrap(current.Add(delta), a.width, a.height)
		if current == to {
			return true
		}
		if a.isWall(current) {
			return false
		}
		if a.isTankAt(current) {
			return false
		}
	}
	return false
}

func (a *BasicTankAlgorithm) isWall(p board.Point) bool {
	if a.cells == nil {
		return false
	}
	return a.cells[p.Y][p.X] == board.Wall
}

func (a *BasicTankAlgorithm) isMine(p board.Point) bool {
	if a.cells == nil {
		return false
	}
	return a.cells[p.Y][p.X] == board.Mine
}

func (a *BasicTankAlgorithm) isTankAt(p board.Point) bool {
	return containsPoint(a.enemyTanks, p) || containsPoint(a.friendlyTanks, p)
}

func (a *BasicTankAlgorithm) isInDangerFromShellsAt(pos board.Point) bool {
	if a.width == 0 || a.height == 0 {
		return false
	}
	for _, shellPos := range a.shells {
		if board.StepDistance(shellPos, pos, a.width, a.height) > 4 {
			continue
		}
		for _, dir := range allDirections {
			if !a.checkLineOfSight(shellPos, pos, dir) {
				continue
			}
			current := shellPos
			delta := dir.Delta()
			for step := 1; step < 4; step++ {
				current = board.Wrap(current.Add(delta), a.width, a.height)
				if current == pos {
					return true
				}
			}
		}
	}
	return false
}

func (a *BasicTankAlgorithm) isPositionSafe(pos board.Point) bool {
	if a.isWall(pos) || a.isMine(pos) {
		return false
	}
	if a.isTankAt(pos) {
		return false
	}
	return !a.isInDangerFromShellsAt(pos)
}

func (a *BasicTankAlgorithm) getSafePositions() []board.Point {
	var out []board.Point
	for _, dir := range allDirections {
		adj := board.Wrap(a.trackedPosition.Add(dir.Delta()), a.width, a.height)
		if a.isPositionSafe(adj) {
			out = append(out, adj)
		}
	}
	return out
}

type safeMoveOption struct {
	pos    board.Point
	action contracts.ActionRequest
	cost   int
}

// getRotationToDirection picks the cheapest single action (or 90
// degree pair) that turns cur into target.
func (a *BasicTankAlgorithm) getRotationToDirection(cur, target board.Direction) contracts.ActionRequest {
	if cur == target {
		return contracts.DoNothing
	}
	if target == cur.RotatedRight45() {
		return contracts.RotateRight45
	}
	if target == cur.RotatedLeft45() {
		return contracts.RotateLeft45
	}
	if target == cur.RotatedRight90() {
		return contracts.RotateRight90
	}
	if target == cur.RotatedLeft90() {
		return contracts.RotateLeft90
	}
	left, right := rotationSteps(cur, target)
	if right <= left {
		return contracts.RotateRight90
	}
	return contracts.RotateLeft90
}

func (a *BasicTankAlgorithm) getSafeMoveOption(pos board.Point) safeMoveOption {
	opt := safeMoveOption{pos: pos, action: contracts.DoNothing, cost: 1000}
	if pos == a.trackedPosition {
		opt.action = contracts.DoNothing
		opt.cost = 0
		return opt
	}
	dir, ok := a.getLineOfSightDirection(a.trackedPosition, pos)
	if !ok {
		return opt
	}
	if board.Wrap(a.trackedPosition.Add(dir.Delta()), a.width, a.height) != pos {
		return opt
	}
	if a.trackedDirection == dir {
		opt.action = contracts.MoveForward
		opt.cost = 1
		return opt
	}
	opt.action = a.getRotationToDirection(a.trackedDirection, dir)
	left, right := rotationSteps(a.trackedDirection, dir)
	opt.cost = min(left, right) + 1
	return opt
}

func (a *BasicTankAlgorithm) getActionToSafePosition() contracts.ActionRequest {
	positions := a.getSafePositions()
	if len(positions) == 0 {
		return contracts.DoNothing
	}
	best := a.getSafeMoveOption(positions[0])
	for _, pos := range positions[1:] {
		opt := a.getSafeMoveOption(pos)
		if opt.cost < best.cost {
			best = opt
		}
	}
	return best.action
}

func (a *BasicTankAlgorithm) updateState(lastAction contracts.ActionRequest) {
	if a.trackedCooldown > 0 {
		a.trackedCooldown--
	}
	switch lastAction {
	case contracts.MoveForward:
		a.trackedPosition = board.Wrap(a.trackedPosition.Add(a.trackedDirection.Delta()), a.width, a.height)
	case contracts.RotateLeft90:
		a.trackedDirection = a.trackedDirection.RotatedLeft90()
	case contracts.RotateLeft45:
		a.trackedDirection = a.trackedDirection.RotatedLeft45()
	case contracts.RotateRight90:
		a.trackedDirection = a.trackedDirection.RotatedRight90()
	case contracts.RotateRight45:
		a.trackedDirection = a.trackedDirection.RotatedRight45()
	case contracts.Shoot:
		if a.trackedShells > 0 {
			a.trackedShells--
		}
		a.trackedCooldown = 4
	}
	if a.trackedCooldown < 0 {
		a.trackedCooldown = 0
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
