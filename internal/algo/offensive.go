package algo

import (
	"github.com/ezynda3/tank-arena/internal/board"
	"github.com/ezynda3/tank-arena/internal/contracts"
)

// OffensiveTankAlgorithm extends BasicTankAlgorithm with pursuit of a
// designated target (spec.md §4.4): it turns to shoot a visible
// target, otherwise follows a BFS path toward it that it recomputes
// when the path runs out, goes stale, or the target jumps.
type OffensiveTankAlgorithm struct {
	*BasicTankAlgorithm

	targetPosition         *board.Point
	previousTargetPosition *board.Point
	currentPath            []board.Point
}

// NewOffensiveTankAlgorithm satisfies contracts.TankAlgorithmFactory.
func NewOffensiveTankAlgorithm(playerID, tankIndex int) contracts.TankAlgorithm {
	return &OffensiveTankAlgorithm{BasicTankAlgorithm: newBasicTankAlgorithm(playerID, tankIndex)}
}

func (a *OffensiveTankAlgorithm) UpdateBattleInfo(info *contracts.BattleInfo) {
	if info.Target != nil {
		t := *info.Target
		a.targetPosition = &t
	} else {
		a.targetPosition = nil
	}
	a.BasicTankAlgorithm.UpdateBattleInfo(info)
}

func (a *OffensiveTankAlgorithm) GetAction() contracts.ActionRequest {
	action := contracts.GetBattleInfo
	a.turnsSinceUpdate++

	if a.turnsSinceUpdate <= 3 {
		switch {
		case a.isInDangerFromShellsAt(a.trackedPosition):
			action = a.getActionToSafePosition()
		case a.canShootEnemy():
			action = contracts.Shoot
		case a.targetPosition != nil:
			if turnAction, ok := a.turnToShootAction(); ok {
				action = turnAction
			} else {
				a.updatePathToTarget()
				if moveAction, ok := a.followCurrentPath(); ok {
					action = moveAction
				}
			}
		}
	}

	a.updateState(action)
	return action
}

func (a *OffensiveTankAlgorithm) turnToShootAction() (contracts.ActionRequest, bool) {
	if a.targetPosition == nil {
		return 0, false
	}
	dir, ok := a.getLineOfSightDirection(a.trackedPosition, *a.targetPosition)
	if !ok || dir == a.trackedDirection {
		return 0, false
	}
	return a.getRotationToDirection(a.trackedDirection, dir), true
}

func (a *OffensiveTankAlgorithm) updatePathToTarget() {
	if a.targetPosition == nil {
		return
	}
	if a.trackedPosition == *a.targetPosition {
		a.currentPath = nil
		a.previousTargetPosition = nil
		return
	}

	targetMovedSignificantly := false
	if a.previousTargetPosition != nil {
		dist := board.StepDistance(*a.previousTargetPosition, *a.targetPosition, a.width, a.height)
		targetMovedSignificantly = dist > 1
	}

	needRecalc := len(a.currentPath) == 0 ||
		a.isTankOffPath() ||
		targetMovedSignificantly ||
		!a.isFirstStepValid()

	if needRecalc {
		a.currentPath = a.findPathBFS(a.trackedPosition, *a.targetPosition)
		t := *a.targetPosition
		a.previousTargetPosition = &t
	}
}

func (a *OffensiveTankAlgorithm) isTankOffPath() bool {
	if len(a.currentPath) == 0 {
		return false
	}
	next := a.currentPath[0]
	delta := next.Sub(a.trackedPosition)
	delta = board.Wrap(delta, a.width, a.height)
	_, ok := directionFromDeltaSafe(normalizeDelta(delta, a.width, a.height))
	return !ok
}

func (a *OffensiveTankAlgorithm) isFirstStepValid() bool {
	if len(a.currentPath) == 0 {
		return false
	}
	return a.isPositionSafe(a.currentPath[0])
}

func (a *OffensiveTankAlgorithm) followCurrentPath() (contracts.ActionRequest, bool) {
	if len(a.currentPath) > 0 && a.currentPath[0] == a.trackedPosition {
		a.currentPath = a.currentPath[1:]
	}
	if len(a.currentPath) == 0 {
		return 0, false
	}
	next := a.currentPath[0]
	dir, ok := directionFromDeltaSafe(normalizeDelta(next.Sub(a.trackedPosition), a.width, a.height))
	if !ok {
		return 0, false
	}
	if dir != a.trackedDirection {
		return a.getRotationToDirection(a.trackedDirection, dir), true
	}
	a.currentPath = a.currentPath[1:]
	return contracts.MoveForward, true
}

// findPathBFS searches the toroidal grid for the shortest path from
// start to target, avoiding Walls, Mines, and known tanks; the first
// step must additionally be a currently-safe cell.
func (a *OffensiveTankAlgorithm) findPathBFS(start, target board.Point) []board.Point {
	if start == target {
		return nil
	}
	type node struct{ p board.Point }
	queue := []board.Point{start}
	cameFrom := map[board.Point]board.Point{}
	visited := map[board.Point]bool{start: true}
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			found = true
			break
		}
		for _, dir := range allDirections {
			neighbor := board.Wrap(current.Add(dir.Delta()), a.width, a.height)
			if visited[neighbor] || a.isWall(neighbor) || a.isMine(neighbor) {
				continue
			}
			if current == start && !a.isPositionSafe(neighbor) {
				continue
			}
			visited[neighbor] = true
			cameFrom[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	if !found {
		return nil
	}
	var path []board.Point
	for cur := target; cur != start; {
		path = append(path, cur)
		cur = cameFrom[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// normalizeDelta reduces a wrapped delta's components into the
// shortest signed offset on a torus of size w x h, so an adjacent cell
// across the wrap boundary still yields a {-1,0,1} delta.
func normalizeDelta(d board.Point, w, h int) board.Point {
	return board.Point{X: shortestSigned(d.X, w), Y: shortestSigned(d.Y, h)}
}

func shortestSigned(v, m int) int {
	if m == 0 {
		return v
	}
	v = ((v % m) + m) % m
	if v > m/2 {
		v -= m
	}
	return v
}

func directionFromDeltaSafe(d board.Point) (board.Direction, bool) {
	for _, dir := range allDirections {
		if dir.Delta() == d {
			return dir, true
		}
	}
	return 0, false
}
