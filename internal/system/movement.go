package system

import (
	"undervault/internal/component"
	"undervault/internal/dungeon"
	"undervault/internal/ecs"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a blocking entity
)

// TryMove attempts to move entity id by (dx, dy) on floor f.
// Returns the outcome and (if MoveAttack) the bumped entity.
func TryMove(w *ecs.World, f *dungeon.Floor, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	// Blocking entities at the destination take precedence over terrain:
	// bumping a live actor is an attack, not a step.
	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == id || !Alive(w, other) {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X == nx && otherPos.Y == ny {
			return MoveAttack, other
		}
	}

	if !f.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// Alive reports whether the entity still has hit points. Entities without
// a health component (ground items) count as alive for bookkeeping.
func Alive(w *ecs.World, id ecs.EntityID) bool {
	c := w.Get(id, component.CHealth)
	if c == nil {
		return w.Alive(id)
	}
	return c.(component.Health).Current > 0
}
