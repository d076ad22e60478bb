package system

import (
	"math"
	"math/rand"

	"undervault/internal/dungeon"
	"undervault/internal/path"
)

// ChoiceKind classifies a monster's decision for its action.
type ChoiceKind uint8

const (
	ChoiceWait   ChoiceKind = iota // no legal proposal this turn
	ChoiceStep                     // move to (X, Y)
	ChoiceAttack                   // the proposed step lands on the target
)

// Choice is a monster's proposed action. The scheduler still validates
// the step against walkability and the tick's occupancy snapshot; a
// rejected step costs the action.
type Choice struct {
	Kind ChoiceKind
	X, Y int
}

// MonsterChoice decides a monster's action as a pure function of what it
// perceives: when the target is within the monster's perception radius
// (Euclidean), follow the first step of the shortest path toward it;
// otherwise wander one random cardinal step. A step onto the target's
// cell becomes an attack.
func MonsterChoice(f *dungeon.Floor, pos, target dungeon.Point, perception int, rng *rand.Rand) Choice {
	if perceives(pos, target, perception) {
		steps := path.Find(f, pos, target)
		if len(steps) > 0 {
			first := steps[0]
			if first == target {
				return Choice{Kind: ChoiceAttack, X: first.X, Y: first.Y}
			}
			return Choice{Kind: ChoiceStep, X: first.X, Y: first.Y}
		}
		// Target perceived but unreachable; fall through to wandering.
	}

	dirs := [4]dungeon.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	d := dirs[rng.Intn(len(dirs))]
	nx, ny := pos.X+d.X, pos.Y+d.Y
	if nx == target.X && ny == target.Y {
		return Choice{Kind: ChoiceAttack, X: nx, Y: ny}
	}
	return Choice{Kind: ChoiceStep, X: nx, Y: ny}
}

// perceives reports whether target is within the Euclidean perception
// radius of pos.
func perceives(pos, target dungeon.Point, perception int) bool {
	dx := float64(target.X - pos.X)
	dy := float64(target.Y - pos.Y)
	return math.Sqrt(dx*dx+dy*dy) <= float64(perception)
}
