package generate

import (
	"math/rand"
	"testing"

	"undervault/internal/dungeon"
)

func TestPopulateSpawnRoomHasNoMonsters(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		f := Generate(testConfig(0, seed))
		spawn, ok := f.SpawnRoom()
		if !ok {
			t.Fatalf("seed %d: no spawn room", seed)
		}
		pop := Populate(f, rand.New(rand.NewSource(seed)))
		for _, m := range pop.Monsters {
			if spawn.Contains(m.X, m.Y) {
				t.Errorf("seed %d: monster spawned in the entry room at (%d,%d)", seed, m.X, m.Y)
			}
		}
	}
}

func TestPopulatePlacementsDistinctAndWalkable(t *testing.T) {
	f := Generate(testConfig(0, 4))
	pop := Populate(f, rand.New(rand.NewSource(4)))

	seen := make(map[dungeon.Point]bool)
	check := func(x, y int, kind string) {
		if !f.IsWalkable(x, y) {
			t.Errorf("%s placed on unwalkable tile (%d,%d)", kind, x, y)
		}
		p := dungeon.Point{X: x, Y: y}
		if seen[p] {
			t.Errorf("duplicate placement at (%d,%d)", x, y)
		}
		seen[p] = true
	}
	for _, m := range pop.Monsters {
		check(m.X, m.Y, "monster")
	}
	for _, it := range pop.Items {
		check(it.X, it.Y, "item")
	}
}

func TestPopulateAvoidsPlayerSpawnCell(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		f := Generate(testConfig(0, seed))
		spawn, _ := f.SpawnRoom()
		sx, sy := spawn.Center()
		pop := Populate(f, rand.New(rand.NewSource(seed)))
		for _, it := range pop.Items {
			if it.X == sx && it.Y == sy {
				t.Errorf("seed %d: item on the player spawn cell", seed)
			}
		}
	}
}

func TestPopulateMonsterCapPerRoom(t *testing.T) {
	f := Generate(testConfig(0, 8))
	pop := Populate(f, rand.New(rand.NewSource(8)))

	perRoom := make(map[int]int)
	for _, m := range pop.Monsters {
		for i, r := range f.Rooms {
			if r.Contains(m.X, m.Y) {
				perRoom[i]++
				break
			}
		}
	}
	for room, n := range perRoom {
		if n > maxMonstersPerRoom {
			t.Errorf("room %d holds %d monsters, cap is %d", room, n, maxMonstersPerRoom)
		}
	}
}

func TestPopulateEmptyFloor(t *testing.T) {
	f := dungeon.New(50, 40, 0)
	pop := Populate(f, rand.New(rand.NewSource(1)))
	if len(pop.Monsters) != 0 || len(pop.Items) != 0 {
		t.Error("a roomless floor must not receive monsters or items")
	}
}
