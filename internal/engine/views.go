package engine

import (
	"github.com/gdamore/tcell/v2"

	"undervault/internal/component"
	"undervault/internal/dungeon"
	"undervault/internal/system"
)

// ActorView is a read-only snapshot of a visible actor.
type ActorView struct {
	X, Y   int
	Name   string
	Symbol rune
	Color  tcell.Color
	Alive  bool
}

// ItemView is a read-only snapshot of a ground item.
type ItemView struct {
	X, Y   int
	Symbol rune
	Color  tcell.Color
	Name   string
}

// PlayerView aggregates everything the HUD shows about the player.
// Attack and Defense include equipment bonuses.
type PlayerView struct {
	X, Y        int
	HP, MaxHP   int
	Attack      int
	Defense     int
	Level       int
	XP          int
	NextLevelXP int
	FloorIndex  int
	Alive       bool
}

// InventoryView lists the bag contents and the equipped slots by name
// (empty string when nothing is equipped).
type InventoryView struct {
	Items    []component.Item
	Capacity int
	Weapon   string
	Armor    string
}

// Floor exposes the current floor's terrain for rendering.
func (e *Engine) Floor() *dungeon.Floor {
	return e.floors.Current()
}

// Monsters returns views of all living monsters on the current floor, in
// processing order.
func (e *Engine) Monsters() []ActorView {
	var out []ActorView
	for _, id := range e.monsters {
		if !system.Alive(e.world, id) {
			continue
		}
		pos := e.world.Get(id, component.CPosition).(component.Position)
		rend := e.world.Get(id, component.CRenderable).(component.Renderable)
		out = append(out, ActorView{
			X: pos.X, Y: pos.Y,
			Name: rend.Name, Symbol: rend.Symbol, Color: rend.Color,
			Alive: true,
		})
	}
	return out
}

// GroundItems returns views of all loot lying on the current floor.
func (e *Engine) GroundItems() []ItemView {
	var out []ItemView
	for _, id := range e.world.Query(component.CGroundItem, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		item := e.world.Get(id, component.CGroundItem).(component.GroundItem).Item
		out = append(out, ItemView{
			X: pos.X, Y: pos.Y,
			Symbol: item.Symbol, Color: item.Color, Name: item.Name,
		})
	}
	return out
}

// Player returns the HUD snapshot of the player.
func (e *Engine) Player() PlayerView {
	pos := e.playerPos()
	hp := e.world.Get(e.player, component.CHealth).(component.Health)
	cb := e.world.Get(e.player, component.CCombat).(component.Combat)
	prog := e.world.Get(e.player, component.CProgression).(component.Progression)
	inv := e.inventory()
	return PlayerView{
		X: pos.X, Y: pos.Y,
		HP: hp.Current, MaxHP: hp.Max,
		Attack:      cb.Attack + inv.AttackBonus(),
		Defense:     cb.Defense + inv.DefenseBonus(),
		Level:       prog.Level,
		XP:          prog.XP,
		NextLevelXP: prog.NextLevelXP,
		FloorIndex:  e.floors.CurrentIndex(),
		Alive:       hp.Current > 0,
	}
}

// Inventory returns the bag snapshot for the inventory overlay.
func (e *Engine) Inventory() InventoryView {
	inv := e.inventory()
	v := InventoryView{
		Items:    append([]component.Item(nil), inv.Items...),
		Capacity: inv.Capacity,
	}
	if inv.Weapon != nil {
		v.Weapon = inv.Weapon.Name
	}
	if inv.Armor != nil {
		v.Armor = inv.Armor.Name
	}
	return v
}

// Messages returns the event log, oldest first.
func (e *Engine) Messages() []string {
	return e.messages
}

// PlayerAlive reports whether the player still has hit points.
func (e *Engine) PlayerAlive() bool {
	return system.Alive(e.world, e.player)
}
