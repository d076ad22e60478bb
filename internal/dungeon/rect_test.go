package dungeon

import "testing"

func TestRectCenter(t *testing.T) {
	r := NewRect(2, 3, 6, 4)
	cx, cy := r.Center()
	if cx != 4 || cy != 4 {
		t.Errorf("expected center (4,4), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersectsIncludesTouching(t *testing.T) {
	a := NewRect(0, 0, 5, 5)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(2, 2, 5, 5), true},
		{"edge touching", NewRect(4, 0, 5, 5), true}, // shared boundary counts
		{"disjoint", NewRect(10, 10, 3, 3), false},
		{"corner touching", NewRect(4, 4, 3, 3), true},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects=%v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectInterior(t *testing.T) {
	r := NewRect(1, 1, 5, 5)
	in := r.Interior()
	if in.X1 != 2 || in.Y1 != 2 || in.X2 != r.X2-1 || in.Y2 != r.Y2-1 {
		t.Errorf("unexpected interior %+v for %+v", in, r)
	}
}

func TestFloorStartsSolid(t *testing.T) {
	f := New(10, 8, 0)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y).Kind != TileWall || f.At(x, y).Walkable {
				t.Fatalf("tile (%d,%d) should start as unwalkable wall", x, y)
			}
		}
	}
}

func TestIsWalkableOutOfBounds(t *testing.T) {
	f := New(10, 8, 0)
	f.Set(0, 0, MakeFloor())
	if f.IsWalkable(-1, 0) || f.IsWalkable(0, -1) || f.IsWalkable(10, 0) || f.IsWalkable(0, 8) {
		t.Error("out-of-bounds positions must not be walkable")
	}
	if !f.IsWalkable(0, 0) {
		t.Error("carved floor tile should be walkable")
	}
}

func TestSpawnAndLastRoom(t *testing.T) {
	f := New(20, 20, 0)
	if _, ok := f.SpawnRoom(); ok {
		t.Error("roomless floor should have no spawn room")
	}

	a := NewRect(1, 1, 4, 4)
	b := NewRect(10, 1, 4, 4)
	c := NewRect(5, 12, 4, 4)
	f.Rows = [][]Rect{{a, b}, {c}}

	spawn, ok := f.SpawnRoom()
	if !ok || spawn != a {
		t.Errorf("expected spawn room %+v, got %+v", a, spawn)
	}
	last, ok := f.LastRoom()
	if !ok || last != c {
		t.Errorf("expected last room %+v, got %+v", c, last)
	}
}
