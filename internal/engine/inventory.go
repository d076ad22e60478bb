package engine

import (
	"fmt"
	"math"

	"undervault/internal/component"
	"undervault/internal/dungeon"
	"undervault/internal/ecs"
	"undervault/internal/factory"
	"undervault/internal/system"
)

// EquipItem moves the bag item at index into the matching equipment slot.
// A previously equipped item of the same kind returns to the bag, so the
// swap never changes the total item count.
func (e *Engine) EquipItem(index int) {
	inv := e.inventory()
	if index < 0 || index >= len(inv.Items) {
		e.addMessage("Invalid item index.")
		return
	}
	item := inv.Items[index]

	switch item.Kind {
	case component.ItemWeapon:
		inv.Items = removeAt(inv.Items, index)
		if inv.Weapon != nil {
			inv.Items = append(inv.Items, *inv.Weapon)
		}
		inv.Weapon = &item
	case component.ItemArmor:
		inv.Items = removeAt(inv.Items, index)
		if inv.Armor != nil {
			inv.Items = append(inv.Items, *inv.Armor)
		}
		inv.Armor = &item
	default:
		e.addMessage(fmt.Sprintf("You can't equip the %s.", item.Name))
		return
	}

	e.world.Add(e.player, inv)
	e.addMessage(fmt.Sprintf("You equip the %s.", item.Name))
}

// UseItem consumes the bag item at index. Potions heal up to the HP cap;
// scrolls strike the nearest living monster in range and stay in the bag
// when no target exists.
func (e *Engine) UseItem(index int) {
	inv := e.inventory()
	if index < 0 || index >= len(inv.Items) {
		e.addMessage("Invalid item index.")
		return
	}
	item := inv.Items[index]

	switch item.Kind {
	case component.ItemPotion:
		hp := e.world.Get(e.player, component.CHealth).(component.Health)
		healed := item.Power
		if hp.Current+healed > hp.Max {
			healed = hp.Max - hp.Current
		}
		hp.Current += healed
		e.world.Add(e.player, hp)
		inv.Items = removeAt(inv.Items, index)
		e.world.Add(e.player, inv)
		e.addMessage(fmt.Sprintf("You drink the %s and recover %d HP.", item.Name, healed))
	case component.ItemScroll:
		target := e.closestMonster(item.Range)
		if target == ecs.NilEntity {
			e.addMessage("No monster in range.")
			return
		}
		name := e.entityName(target)
		hp := e.world.Get(target, component.CHealth).(component.Health)
		hp.Current -= item.Power
		e.world.Add(target, hp)
		inv.Items = removeAt(inv.Items, index)
		e.world.Add(e.player, inv)
		if hp.Current <= 0 {
			xp, newLevel := system.AwardKillXP(e.world, e.player)
			e.addMessage(fmt.Sprintf("Lightning strikes the %s dead! (+%d XP)", name, xp))
			if newLevel > 0 {
				e.addMessage(fmt.Sprintf("You reach level %d!", newLevel))
			}
		} else {
			e.addMessage(fmt.Sprintf("Lightning strikes the %s for %d damage.", name, item.Power))
		}
	default:
		e.addMessage(fmt.Sprintf("You can't use the %s.", item.Name))
	}
}

// DropItem places the bag item at index on the ground at the player's
// feet.
func (e *Engine) DropItem(index int) {
	inv := e.inventory()
	if index < 0 || index >= len(inv.Items) {
		e.addMessage("Invalid item index.")
		return
	}
	item := inv.Items[index]
	inv.Items = removeAt(inv.Items, index)
	e.world.Add(e.player, inv)

	pos := e.playerPos()
	factory.NewGroundItem(e.world, item, pos.X, pos.Y)
	e.addMessage(fmt.Sprintf("You drop the %s.", item.Name))
}

// closestMonster returns the nearest living monster within the given
// Euclidean radius, or NilEntity. Ties break toward the earlier roster
// entry, which keeps scroll targeting deterministic.
func (e *Engine) closestMonster(radius float64) ecs.EntityID {
	pos := e.playerPos()
	best := ecs.NilEntity
	bestDist := radius
	for _, id := range e.monsters {
		if !system.Alive(e.world, id) {
			continue
		}
		mp := e.world.Get(id, component.CPosition).(component.Position)
		d := euclidean(dungeon.Point{X: pos.X, Y: pos.Y}, dungeon.Point{X: mp.X, Y: mp.Y})
		if d <= bestDist && (best == ecs.NilEntity || d < bestDist) {
			best = id
			bestDist = d
		}
	}
	return best
}

func euclidean(a, b dungeon.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func removeAt(items []component.Item, i int) []component.Item {
	return append(items[:i], items[i+1:]...)
}
