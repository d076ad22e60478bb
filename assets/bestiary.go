package assets

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef describes one monster type that the populator may spawn.
type MonsterDef struct {
	Name       string
	Symbol     rune
	Color      tcell.Color
	MaxHP      int
	Attack     int
	Defense    int
	Perception int
	Speed      float64
	MinLevel   int // shallowest floor index the monster appears on
}

// Bestiary lists every monster type, shallowest first.
var Bestiary = []MonsterDef{
	{
		Name:       "goblin",
		Symbol:     'g',
		Color:      tcell.ColorRed,
		MaxHP:      15,
		Attack:     3,
		Defense:    1,
		Perception: 5,
		Speed:      2.0,
		MinLevel:   0,
	},
	{
		Name:       "orc",
		Symbol:     'o',
		Color:      tcell.ColorDarkRed,
		MaxHP:      22,
		Attack:     5,
		Defense:    2,
		Perception: 6,
		Speed:      3.0,
		MinLevel:   3,
	},
}

// RandomMonster draws a monster type eligible for the given floor level.
func RandomMonster(level int, rng *rand.Rand) MonsterDef {
	var eligible []MonsterDef
	for _, d := range Bestiary {
		if level >= d.MinLevel {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		eligible = Bestiary[:1]
	}
	return eligible[rng.Intn(len(eligible))]
}
