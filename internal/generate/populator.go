package generate

import (
	"math/rand"

	"undervault/assets"
	"undervault/internal/component"
	"undervault/internal/dungeon"
)

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Def  assets.MonsterDef
	X, Y int
}

// ItemSpawn describes one ground item to create.
type ItemSpawn struct {
	Item component.Item
	X, Y int
}

// Population is returned by Populate with entity spawn data for a freshly
// visited floor.
type Population struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

const (
	maxMonstersPerRoom = 2
	itemChancePercent  = 60
)

// Populate rolls monster and item placements for a floor. The spawn room
// (first room of the first row) never receives monsters; every room may
// receive one item. An occupied set keeps all placements, and the player
// spawn cell, mutually distinct.
func Populate(f *dungeon.Floor, rng *rand.Rand) Population {
	var pop Population
	spawn, ok := f.SpawnRoom()
	if !ok {
		return pop
	}

	occupied := make(map[dungeon.Point]bool)
	sx, sy := spawn.Center()
	occupied[dungeon.Point{X: sx, Y: sy}] = true

	for _, row := range f.Rows {
		for _, room := range row {
			if room == spawn {
				continue
			}
			n := rng.Intn(maxMonstersPerRoom + 1)
			for i := 0; i < n; i++ {
				x, y, ok := pickFree(f, room, rng, occupied)
				if !ok {
					continue
				}
				occupied[dungeon.Point{X: x, Y: y}] = true
				pop.Monsters = append(pop.Monsters, MonsterSpawn{
					Def: assets.RandomMonster(f.Level, rng),
					X:   x, Y: y,
				})
			}
		}
	}

	for _, room := range f.Rooms {
		if rng.Intn(100) >= itemChancePercent {
			continue
		}
		x, y, ok := pickFree(f, room, rng, occupied)
		if !ok {
			continue
		}
		occupied[dungeon.Point{X: x, Y: y}] = true
		pop.Items = append(pop.Items, ItemSpawn{Item: assets.RandomItem(rng), X: x, Y: y})
	}

	return pop
}

// pickFree samples random interior positions until it finds a walkable,
// unoccupied one. Gives up after a bounded number of attempts so crowded
// rooms cannot loop forever.
func pickFree(f *dungeon.Floor, room dungeon.Rect, rng *rand.Rand, occupied map[dungeon.Point]bool) (int, int, bool) {
	const maxAttempts = 20
	in := room.Interior()
	w := in.X2 - in.X1 + 1
	h := in.Y2 - in.Y1 + 1
	for i := 0; i < maxAttempts; i++ {
		x := in.X1 + rng.Intn(w)
		y := in.Y1 + rng.Intn(h)
		if !f.IsWalkable(x, y) || occupied[dungeon.Point{X: x, Y: y}] {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}
