package generate

import (
	"math/rand"

	"undervault/internal/dungeon"
)

// carveCorridor digs an L-shaped tunnel between room centers: with 50%
// probability horizontal-then-vertical, otherwise vertical-then-horizontal.
// Spans are carved straight through whatever they cross.
func carveCorridor(f *dungeon.Floor, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(f, x1, x2, y1)
		carveV(f, y1, y2, x2)
	} else {
		carveV(f, y1, y2, x1)
		carveH(f, x1, x2, y2)
	}
}

func carveH(f *dungeon.Floor, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if f.InBounds(x, y) {
			f.Set(x, y, dungeon.MakeFloor())
		}
	}
}

func carveV(f *dungeon.Floor, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if f.InBounds(x, y) {
			f.Set(x, y, dungeon.MakeFloor())
		}
	}
}
