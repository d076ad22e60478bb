package system

import (
	"testing"

	"undervault/internal/component"
	"undervault/internal/ecs"
)

func placeActor(w *ecs.World, x, y, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.TagBlocking{})
	return id
}

func TestTryMoveOntoFloor(t *testing.T) {
	f := openFloor(10, 10)
	w := ecs.NewWorld()
	id := placeActor(w, 3, 3, 10)

	result, _ := TryMove(w, f, id, 1, 0)
	if result != MoveOK {
		t.Fatalf("result %d, want MoveOK", result)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 4 || pos.Y != 3 {
		t.Errorf("position (%d,%d), want (4,3)", pos.X, pos.Y)
	}
}

func TestTryMoveIntoWall(t *testing.T) {
	f := openFloor(10, 10)
	w := ecs.NewWorld()
	id := placeActor(w, 1, 1, 10)

	result, _ := TryMove(w, f, id, -1, 0)
	if result != MoveBlocked {
		t.Fatalf("result %d, want MoveBlocked", result)
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	if pos.X != 1 || pos.Y != 1 {
		t.Error("blocked move must not change position")
	}
}

func TestTryMoveIntoActorIsAttack(t *testing.T) {
	f := openFloor(10, 10)
	w := ecs.NewWorld()
	mover := placeActor(w, 3, 3, 10)
	other := placeActor(w, 4, 3, 10)

	result, bumped := TryMove(w, f, mover, 1, 0)
	if result != MoveAttack {
		t.Fatalf("result %d, want MoveAttack", result)
	}
	if bumped != other {
		t.Errorf("bumped entity %d, want %d", bumped, other)
	}
	pos := w.Get(mover, component.CPosition).(component.Position)
	if pos.X != 3 {
		t.Error("attack bump must not move the attacker")
	}
}

func TestTryMoveIgnoresDeadBlockers(t *testing.T) {
	f := openFloor(10, 10)
	w := ecs.NewWorld()
	mover := placeActor(w, 3, 3, 10)
	corpse := placeActor(w, 4, 3, 10)

	hp := w.Get(corpse, component.CHealth).(component.Health)
	hp.Current = 0
	w.Add(corpse, hp)

	result, _ := TryMove(w, f, mover, 1, 0)
	if result != MoveOK {
		t.Errorf("result %d, want MoveOK over a corpse awaiting purge", result)
	}
}
