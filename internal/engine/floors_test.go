package engine

import "testing"

func TestFloorManagerCachesFloors(t *testing.T) {
	m := NewFloorManager(DefaultConfig())
	first := m.Current()

	if _, ok := m.Transition(1); !ok {
		t.Fatal("descending to floor 1 refused")
	}
	second := m.Current()

	if _, ok := m.Transition(0); !ok {
		t.Fatal("ascending back to floor 0 refused")
	}
	if m.Current() != first {
		t.Error("floor 0 was regenerated instead of reused")
	}
	if _, ok := m.Transition(1); !ok {
		t.Fatal("second descent refused")
	}
	if m.Current() != second {
		t.Error("floor 1 was regenerated instead of reused")
	}
}

func TestFloorManagerStairAlignment(t *testing.T) {
	m := NewFloorManager(DefaultConfig())
	for level := 0; level < m.cfg.MaxDepth-1; level++ {
		down := m.Current().DownStairs
		if down == nil {
			t.Fatalf("floor %d has no down staircase", level)
		}
		spawn, ok := m.Transition(level + 1)
		if !ok {
			t.Fatalf("descent from floor %d refused", level)
		}
		if *spawn != *down {
			t.Errorf("floor %d arrival %+v not aligned with the stairs above %+v",
				level+1, *spawn, *down)
		}
	}
	if m.Current().DownStairs != nil {
		t.Error("the deepest floor must not have a down staircase")
	}
}

func TestFloorManagerSaveAndState(t *testing.T) {
	m := NewFloorManager(DefaultConfig())
	if _, ok := m.State(0); ok {
		t.Error("unvisited floor should have no saved state")
	}

	st := &FloorState{Monsters: []MonsterState{{X: 3, Y: 4, HP: 9, Name: "goblin"}}}
	m.SaveState(0, st)
	got, ok := m.State(0)
	if !ok || len(got.Monsters) != 1 || got.Monsters[0].Name != "goblin" {
		t.Errorf("saved state not returned: %+v", got)
	}
}
