package component

import "undervault/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is a grid cell. Actors only ever rest on integer cells.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
