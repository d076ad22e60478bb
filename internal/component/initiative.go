package component

import "undervault/internal/ecs"

const CInitiative ecs.ComponentType = 5

// Initiative gates how often an actor may act. An actor with speed s may
// act once per 1/s simulated seconds; LastAction records the time of the
// most recent action.
type Initiative struct {
	Speed      float64
	LastAction float64
}

func (Initiative) Type() ecs.ComponentType { return CInitiative }
