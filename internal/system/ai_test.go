package system

import (
	"math/rand"
	"testing"

	"undervault/internal/dungeon"
)

func openFloor(w, h int) *dungeon.Floor {
	f := dungeon.New(w, h, 0)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			f.Set(x, y, dungeon.MakeFloor())
		}
	}
	return f
}

func TestMonsterChoicePursuesPerceivedTarget(t *testing.T) {
	f := openFloor(20, 20)
	rng := rand.New(rand.NewSource(1))

	pos := dungeon.Point{X: 2, Y: 10}
	target := dungeon.Point{X: 8, Y: 10}

	c := MonsterChoice(f, pos, target, 10, rng)
	if c.Kind != ChoiceStep {
		t.Fatalf("choice kind %d, want step", c.Kind)
	}
	// On an open floor the first step must close the straight-line gap.
	if c.X != 3 || c.Y != 10 {
		t.Errorf("step to (%d,%d), want (3,10)", c.X, c.Y)
	}
}

func TestMonsterChoiceAttacksAdjacentTarget(t *testing.T) {
	f := openFloor(10, 10)
	rng := rand.New(rand.NewSource(1))

	pos := dungeon.Point{X: 4, Y: 4}
	target := dungeon.Point{X: 5, Y: 4}

	c := MonsterChoice(f, pos, target, 8, rng)
	if c.Kind != ChoiceAttack {
		t.Fatalf("choice kind %d, want attack", c.Kind)
	}
	if c.X != target.X || c.Y != target.Y {
		t.Errorf("attack at (%d,%d), want the target cell", c.X, c.Y)
	}
}

func TestMonsterChoiceWandersWhenTargetUnseen(t *testing.T) {
	f := openFloor(40, 40)
	rng := rand.New(rand.NewSource(3))

	pos := dungeon.Point{X: 5, Y: 5}
	target := dungeon.Point{X: 35, Y: 35} // far outside radius 5

	for i := 0; i < 50; i++ {
		c := MonsterChoice(f, pos, target, 5, rng)
		if c.Kind != ChoiceStep {
			t.Fatalf("iteration %d: kind %d, want a wandering step", i, c.Kind)
		}
		dx := c.X - pos.X
		dy := c.Y - pos.Y
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("iteration %d: wander step (%d,%d) is not one cardinal cell", i, dx, dy)
		}
	}
}

func TestMonsterChoiceWandersWhenTargetUnreachable(t *testing.T) {
	// Target sealed in a vault: perceived but unreachable, so the
	// monster falls back to wandering rather than freezing.
	f := openFloor(12, 12)
	target := dungeon.Point{X: 6, Y: 6}
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		f.Set(target.X+d[0], target.Y+d[1], dungeon.MakeWall())
	}

	rng := rand.New(rand.NewSource(4))
	c := MonsterChoice(f, dungeon.Point{X: 2, Y: 6}, target, 10, rng)
	if c.Kind != ChoiceStep {
		t.Errorf("kind %d, want a wandering step toward nothing", c.Kind)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
