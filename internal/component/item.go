package component

import (
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// ItemKind categorises what an item does when equipped or used.
type ItemKind uint8

const (
	ItemWeapon ItemKind = iota // Power = attack bonus while equipped
	ItemArmor                  // Power = defense bonus while equipped
	ItemPotion                 // Power = HP restored on use
	ItemScroll                 // Power = damage to the closest monster in Range
)

// Item is a plain value struct representing one item. It is stored by
// value inside Inventory and inside ground-item entities — it is not an
// entity itself.
type Item struct {
	Name   string
	Kind   ItemKind
	Symbol rune
	Color  tcell.Color
	Power  int
	Range  float64 // targeting radius, scrolls only
}

const CGroundItem ecs.ComponentType = 7

// GroundItem marks an entity as an item lying on the floor and carries
// the item payload.
type GroundItem struct {
	Item Item
}

func (GroundItem) Type() ecs.ComponentType { return CGroundItem }
