package system

import (
	"undervault/internal/component"
	"undervault/internal/ecs"
)

// Progression tuning. The threshold grows by half each level and leftover
// XP carries over, so 80 XP + a kill at threshold 100 ends at level 2
// with 30 XP toward a threshold of 150.
const (
	XPPerKill      = 50
	BaseLevelXP    = 100
	LevelUpHP      = 5
	LevelUpAttack  = 1
	LevelUpDefense = 1
	LevelUpPercept = 1
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage    int
	Killed    bool
	XPAwarded int
	NewLevel  int // 0 when no level-up happened
}

// Attack resolves one attack from attacker against defender.
// Damage is max(1, attack+weapon − defense−armor); the defender is never
// destroyed here — dead actors are purged by the engine at the end of the
// tick so they can still be referenced for messages. A player kill awards
// XP and may level the player up.
func Attack(w *ecs.World, attackerID, defenderID ecs.EntityID) AttackResult {
	atkComp := w.Get(attackerID, component.CCombat)
	defComp := w.Get(defenderID, component.CCombat)
	hpComp := w.Get(defenderID, component.CHealth)
	if atkComp == nil || defComp == nil || hpComp == nil {
		return AttackResult{}
	}

	atk := atkComp.(component.Combat).Attack + equipAttackBonus(w, attackerID)
	def := defComp.(component.Combat).Defense + equipDefenseBonus(w, defenderID)
	dmg := atk - def
	if dmg < 1 {
		dmg = 1
	}

	hp := hpComp.(component.Health)
	hp.Current -= dmg
	w.Add(defenderID, hp)

	result := AttackResult{Damage: dmg}
	if hp.Current <= 0 {
		result.Killed = true
		if w.Has(attackerID, component.CTagPlayer) {
			result.XPAwarded, result.NewLevel = AwardKillXP(w, attackerID)
		}
	}
	return result
}

// AwardKillXP grants the fixed kill award to the player's progression
// state and applies any resulting level-ups. Returns the XP granted and
// the new level (0 when unchanged).
func AwardKillXP(w *ecs.World, playerID ecs.EntityID) (xp, newLevel int) {
	c := w.Get(playerID, component.CProgression)
	if c == nil {
		return 0, 0
	}
	prog := c.(component.Progression)
	prog.XP += XPPerKill

	leveled := false
	for prog.XP >= prog.NextLevelXP {
		prog.XP -= prog.NextLevelXP
		prog.NextLevelXP = prog.NextLevelXP * 3 / 2
		prog.Level++
		leveled = true
		applyLevelBonuses(w, playerID)
	}
	w.Add(playerID, prog)

	if leveled {
		return XPPerKill, prog.Level
	}
	return XPPerKill, 0
}

// applyLevelBonuses raises the player's stats for one level gained and
// refills HP to the new maximum.
func applyLevelBonuses(w *ecs.World, playerID ecs.EntityID) {
	if c := w.Get(playerID, component.CHealth); c != nil {
		hp := c.(component.Health)
		hp.Max += LevelUpHP
		hp.Current = hp.Max
		w.Add(playerID, hp)
	}
	if c := w.Get(playerID, component.CCombat); c != nil {
		cb := c.(component.Combat)
		cb.Attack += LevelUpAttack
		cb.Defense += LevelUpDefense
		cb.Perception += LevelUpPercept
		w.Add(playerID, cb)
	}
}

// equipAttackBonus returns the equipped weapon bonus (players only).
func equipAttackBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return 0
	}
	return c.(component.Inventory).AttackBonus()
}

// equipDefenseBonus returns the equipped armor bonus (players only).
func equipDefenseBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CInventory)
	if c == nil {
		return 0
	}
	return c.(component.Inventory).DefenseBonus()
}
