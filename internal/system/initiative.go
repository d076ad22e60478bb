package system

import (
	"undervault/internal/component"
	"undervault/internal/ecs"
)

// CanAct reports whether the actor's cooldown has elapsed: an actor with
// speed s may act once now − lastAction ≥ 1/s. Faster actors get more
// actions per unit of simulated time; the engine may poll as often as it
// likes without granting extra actions.
func CanAct(w *ecs.World, id ecs.EntityID, now float64) bool {
	c := w.Get(id, component.CInitiative)
	if c == nil {
		return false
	}
	ini := c.(component.Initiative)
	if ini.Speed <= 0 {
		return false
	}
	return now-ini.LastAction >= 1.0/ini.Speed
}

// MarkActed stamps the actor's last-action time. Called after every
// attempted action, including ones rejected by collision: a blocked
// actor spends its action.
func MarkActed(w *ecs.World, id ecs.EntityID, now float64) {
	c := w.Get(id, component.CInitiative)
	if c == nil {
		return
	}
	ini := c.(component.Initiative)
	ini.LastAction = now
	w.Add(id, ini)
}
