package component

import "undervault/internal/ecs"

const CInventory ecs.ComponentType = 8

// Inventory is the player's bag plus equipped gear. Weapon and Armor are
// nil when nothing is equipped; equipping swaps the previous piece back
// into Items.
type Inventory struct {
	Items    []Item
	Capacity int
	Weapon   *Item
	Armor    *Item
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Full reports whether the bag has no space left.
func (inv Inventory) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

// AttackBonus returns the equipped weapon's attack bonus, or 0.
func (inv Inventory) AttackBonus() int {
	if inv.Weapon == nil {
		return 0
	}
	return inv.Weapon.Power
}

// DefenseBonus returns the equipped armor's defense bonus, or 0.
func (inv Inventory) DefenseBonus() int {
	if inv.Armor == nil {
		return 0
	}
	return inv.Armor.Power
}
