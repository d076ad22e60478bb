package dungeon

// Floor is one level of the dungeon: a tile grid plus the organized room
// layout produced by generation. A Floor is generated exactly once per
// level index and never regenerated, so stair coordinates are stable for
// the lifetime of a session.
type Floor struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect   // in placement order
	Rows          [][]Rect // rooms bucketed by vertical proximity, left to right
	Level         int
	UpStairs      *Point
	DownStairs    *Point
}

// New creates a Floor of the given size filled with walls.
func New(width, height, level int) *Floor {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Floor{Width: width, Height: height, Tiles: tiles, Level: level}
}

// InBounds reports whether (x, y) is within the floor boundaries.
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (f *Floor) At(x, y int) Tile {
	return f.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (f *Floor) Set(x, y int, t Tile) {
	f.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (f *Floor) IsWalkable(x, y int) bool {
	if !f.InBounds(x, y) {
		return false
	}
	return f.Tiles[y][x].Walkable
}

// SpawnRoom returns the first room of the first row — the player's entry
// room — and false when the floor has no rooms at all.
func (f *Floor) SpawnRoom() (Rect, bool) {
	if len(f.Rows) == 0 || len(f.Rows[0]) == 0 {
		return Rect{}, false
	}
	return f.Rows[0][0], true
}

// LastRoom returns the last room of the last row, where the descending
// staircase is carved.
func (f *Floor) LastRoom() (Rect, bool) {
	if len(f.Rows) == 0 {
		return Rect{}, false
	}
	row := f.Rows[len(f.Rows)-1]
	if len(row) == 0 {
		return Rect{}, false
	}
	return row[len(row)-1], true
}
