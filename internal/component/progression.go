package component

import "undervault/internal/ecs"

const CProgression ecs.ComponentType = 6

// Progression is the player's leveling state. Only the player carries one;
// monsters never level.
type Progression struct {
	Level       int
	XP          int
	NextLevelXP int
}

func (Progression) Type() ecs.ComponentType { return CProgression }
