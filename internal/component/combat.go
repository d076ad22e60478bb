package component

import "undervault/internal/ecs"

const CCombat ecs.ComponentType = 4

// Combat holds an actor's fighting stats. Perception is the Euclidean
// radius within which the actor notices a target.
type Combat struct {
	Attack     int
	Defense    int
	Perception int
}

func (Combat) Type() ecs.ComponentType { return CCombat }
