// Package path implements grid shortest-path search for monster pursuit.
package path

import (
	"container/heap"

	"undervault/internal/dungeon"
)

// Grid is the walkability surface a search runs over. It is the static
// tile grid only — actors are not obstacles here; actor collision is the
// turn scheduler's concern.
type Grid interface {
	InBounds(x, y int) bool
	IsWalkable(x, y int) bool
}

// Find returns the shortest 4-directional path from start to goal,
// excluding start and including goal, or nil when the goal is
// unreachable. Ties between frontier cells break on the lowest total
// estimated cost (A* with a Manhattan heuristic, unit step cost).
func Find(g Grid, start, goal dungeon.Point) []dungeon.Point {
	if !g.IsWalkable(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []dungeon.Point{}
	}

	open := &nodeHeap{}
	heap.Init(open)

	cameFrom := make(map[dungeon.Point]dungeon.Point)
	gScore := map[dungeon.Point]int{start: 0}
	inOpen := map[dungeon.Point]bool{start: true}

	heap.Push(open, &node{cell: start, f: manhattan(start, goal)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*node).cell
		inOpen[current] = false

		if current == goal {
			return reconstruct(cameFrom, current, start)
		}

		for _, d := range [4]dungeon.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			next := dungeon.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !g.InBounds(next.X, next.Y) || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			tentative := gScore[current] + 1
			if known, seen := gScore[next]; seen && tentative >= known {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			if !inOpen[next] {
				heap.Push(open, &node{cell: next, f: tentative + manhattan(next, goal)})
				inOpen[next] = true
			}
		}
	}
	return nil
}

func manhattan(a, b dungeon.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func reconstruct(cameFrom map[dungeon.Point]dungeon.Point, current, start dungeon.Point) []dungeon.Point {
	var rev []dungeon.Point
	for current != start {
		rev = append(rev, current)
		current = cameFrom[current]
	}
	// Reverse into start→goal order.
	out := make([]dungeon.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

// node is one open-set entry; f is the estimated total cost through it.
type node struct {
	cell dungeon.Point
	f    int
	idx  int
}

type nodeHeap []*node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx = i
	h[j].idx = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.idx = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.idx = -1
	*h = old[:n-1]
	return item
}
