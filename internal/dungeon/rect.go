package dungeon

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms. X2/Y2 are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other. The test is inclusive of
// the boundary so that adjacent rooms count as overlapping; this keeps a
// one-tile wall between any two accepted rooms and guarantees connecting
// corridors always touch a room edge.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Interior returns the rectangle shrunk by one tile on each side, the
// region where entities may be placed without touching a wall-adjacent
// edge. Degenerate rooms collapse to their own bounds.
func (r Rect) Interior() Rect {
	in := Rect{X1: r.X1 + 1, Y1: r.Y1 + 1, X2: r.X2 - 1, Y2: r.Y2 - 1}
	if in.X1 > in.X2 || in.Y1 > in.Y2 {
		return r
	}
	return in
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}
