package generate

import (
	"math/rand"

	"undervault/internal/dungeon"
)

// Config drives procedural generation for one floor. The same Config for
// the same Level always produces the same layout: the random source is
// derived from Seed and Level, never from ambient global state.
type Config struct {
	Width, Height int
	Level         int
	MaxDepth      int // floors are indexed 0..MaxDepth-1
	Attempts      int // room placement attempts per pass
	MinRoomSize   int
	MaxRoomSize   int
	RowBand       int // rooms whose vertical centers are within this band share a row
	Seed          int64

	// InheritedUpStairs, when set, is where the up staircase must be
	// carved so that it aligns with the down staircase of the floor above.
	InheritedUpStairs *dungeon.Point
}

const (
	// levelSeedStride separates per-level random streams.
	levelSeedStride = 0x9E3779B9
	// retrySeedStride separates the streams of successive zero-room
	// retries for one level.
	retrySeedStride = 7919
	// maxRetries bounds re-generation when a pass places no rooms. The
	// retry sequence is derived from the seed, so it is as deterministic
	// as the first pass.
	maxRetries = 8
)

// Generate produces a Floor for cfg.Level. Room placement is
// rejection-sampled; rooms are connected in placement order by L-shaped
// corridors; accepted rooms are bucketed into rows; stairs are carved
// last. If a pass places zero rooms the whole pass is retried with a
// derived seed, and after maxRetries the fully-walled floor is returned
// as is (callers refuse transitions into a floor without stairs).
func Generate(cfg *Config) *dungeon.Floor {
	var f *dungeon.Floor
	for retry := 0; ; retry++ {
		seed := cfg.Seed + int64(cfg.Level)*levelSeedStride + int64(retry)*retrySeedStride
		rng := rand.New(rand.NewSource(seed))
		f = generateOnce(cfg, rng)
		if len(f.Rooms) > 0 || retry >= maxRetries {
			break
		}
	}
	buildRows(f, cfg.RowBand)
	placeStairs(f, cfg)
	return f
}

func generateOnce(cfg *Config, rng *rand.Rand) *dungeon.Floor {
	f := dungeon.New(cfg.Width, cfg.Height, cfg.Level)

	for i := 0; i < cfg.Attempts; i++ {
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		if cfg.Width-w-2 < 1 || cfg.Height-h-2 < 1 {
			continue // room cannot fit with a border wall
		}
		x := 1 + rng.Intn(cfg.Width-w-2)
		y := 1 + rng.Intn(cfg.Height-h-2)

		room := dungeon.NewRect(x, y, w, h)
		overlaps := false
		for _, other := range f.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(f, room)
		if len(f.Rooms) > 0 {
			prev := f.Rooms[len(f.Rooms)-1]
			px, py := prev.Center()
			cx, cy := room.Center()
			carveCorridor(f, px, py, cx, cy, rng)
		}
		f.Rooms = append(f.Rooms, room)
	}
	return f
}

func carveRoom(f *dungeon.Floor, room dungeon.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			f.Set(x, y, dungeon.MakeFloor())
		}
	}
}

// buildRows partitions the accepted rooms into rows: sort by vertical
// center, group successive rooms whose centers fall within band of the
// row's first member, then order each row left to right.
func buildRows(f *dungeon.Floor, band int) {
	if len(f.Rooms) == 0 {
		return
	}
	sorted := make([]dungeon.Rect, len(f.Rooms))
	copy(sorted, f.Rooms)
	sortRects(sorted, func(a, b dungeon.Rect) bool {
		_, ay := a.Center()
		_, by := b.Center()
		return ay < by
	})

	var rows [][]dungeon.Rect
	_, anchorY := sorted[0].Center()
	row := []dungeon.Rect{sorted[0]}
	for _, r := range sorted[1:] {
		_, cy := r.Center()
		if cy-anchorY <= band {
			row = append(row, r)
			continue
		}
		rows = append(rows, row)
		row = []dungeon.Rect{r}
		anchorY = cy
	}
	rows = append(rows, row)

	for _, row := range rows {
		sortRects(row, func(a, b dungeon.Rect) bool {
			ax, _ := a.Center()
			bx, _ := b.Center()
			return ax < bx
		})
	}
	f.Rows = rows
}

// sortRects is a stable insertion sort so that equal centers keep
// placement order; room counts are tiny.
func sortRects(rs []dungeon.Rect, less func(a, b dungeon.Rect) bool) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && less(rs[j], rs[j-1]); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

func placeStairs(f *dungeon.Floor, cfg *Config) {
	// Up stairs: at the coordinate handed down from the floor above, so
	// that descending and re-ascending land on aligned tiles. Otherwise
	// any floor below the surface gets one at its spawn room's center.
	if cfg.InheritedUpStairs != nil && f.InBounds(cfg.InheritedUpStairs.X, cfg.InheritedUpStairs.Y) {
		p := *cfg.InheritedUpStairs
		f.Set(p.X, p.Y, dungeon.MakeStairsUp())
		f.UpStairs = &p
	} else if cfg.Level > 0 {
		if spawn, ok := f.SpawnRoom(); ok {
			x, y := spawn.Center()
			f.Set(x, y, dungeon.MakeStairsUp())
			f.UpStairs = &dungeon.Point{X: x, Y: y}
		}
	}

	// Down stairs: center of the last room of the last row, except on the
	// deepest floor.
	if cfg.Level < cfg.MaxDepth-1 {
		if last, ok := f.LastRoom(); ok {
			x, y := last.Center()
			f.Set(x, y, dungeon.MakeStairsDown())
			f.DownStairs = &dungeon.Point{X: x, Y: y}
		}
	}
}
