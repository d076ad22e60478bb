package system

import (
	"testing"

	"undervault/internal/component"
	"undervault/internal/ecs"
)

func newActor(w *ecs.World, speed float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Initiative{Speed: speed, LastAction: 0})
	return id
}

func TestCanActRespectsCooldown(t *testing.T) {
	w := ecs.NewWorld()
	id := newActor(w, 5) // cooldown 0.2

	if CanAct(w, id, 0.1) {
		t.Error("actor allowed to act before its cooldown elapsed")
	}
	if !CanAct(w, id, 0.2) {
		t.Error("actor blocked exactly at the cooldown boundary")
	}
	if !CanAct(w, id, 1.0) {
		t.Error("actor blocked long after the cooldown elapsed")
	}
}

func TestMarkActedResetsCooldown(t *testing.T) {
	w := ecs.NewWorld()
	id := newActor(w, 5)

	MarkActed(w, id, 0.25)
	if CanAct(w, id, 0.30) {
		t.Error("actor allowed to act again 0.05 after acting at speed 5")
	}
	if !CanAct(w, id, 0.45) {
		t.Error("actor blocked a full cooldown after acting")
	}
}

// TestActionRateUnderDensePolling checks the core scheduler property:
// polling more often than the cooldown grants no extra actions, and an
// actor with speed s lands s actions per unit time.
func TestActionRateUnderDensePolling(t *testing.T) {
	// want counts actions over the two simulated time units.
	cases := []struct {
		speed float64
		want  int
	}{
		{speed: 10, want: 20},
		{speed: 2, want: 4},
		{speed: 0.5, want: 1},
	}

	for _, tc := range cases {
		w := ecs.NewWorld()
		id := newActor(w, tc.speed)
		// Force the first action to wait out a full cooldown.
		MarkActed(w, id, 0)

		// Poll at 1ms steps over exactly two time units.
		acted := 0
		for step := 1; step <= 2000; step++ {
			now := float64(step) / 1000.0
			if CanAct(w, id, now) {
				acted++
				MarkActed(w, id, now)
			}
		}
		if acted != tc.want {
			t.Errorf("speed %.1f: %d actions over 2 units, want %d", tc.speed, acted, tc.want)
		}
	}
}

func TestCanActInvalidActors(t *testing.T) {
	w := ecs.NewWorld()
	plain := w.CreateEntity() // no initiative component
	if CanAct(w, plain, 100) {
		t.Error("entity without initiative must never act")
	}

	frozen := newActor(w, 0)
	if CanAct(w, frozen, 100) {
		t.Error("zero-speed actor must never act")
	}
}
