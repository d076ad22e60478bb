package engine

import (
	"testing"

	"undervault/internal/component"
)

func giveItems(e *Engine, items ...component.Item) {
	inv := e.inventory()
	inv.Items = append(inv.Items, items...)
	e.world.Add(e.player, inv)
}

func lastMessage(e *Engine) string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func TestEquipWeaponAndSwap(t *testing.T) {
	e := newTestEngine(42)
	sword := component.Item{Name: "Sword", Kind: component.ItemWeapon, Power: 2}
	axe := component.Item{Name: "Axe", Kind: component.ItemWeapon, Power: 3}
	giveItems(e, sword, axe)

	e.EquipItem(0)
	inv := e.Inventory()
	if inv.Weapon != "Sword" {
		t.Fatalf("wielding %q, want Sword", inv.Weapon)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("bag holds %d items after equipping, want 1", len(inv.Items))
	}

	// Equipping the axe returns the sword to the bag.
	e.EquipItem(0)
	inv = e.Inventory()
	if inv.Weapon != "Axe" {
		t.Errorf("wielding %q, want Axe", inv.Weapon)
	}
	if len(inv.Items) != 1 || inv.Items[0].Name != "Sword" {
		t.Errorf("bag %v, want the displaced Sword", inv.Items)
	}
}

func TestEquipBonusAffectsPlayerView(t *testing.T) {
	e := newTestEngine(42)
	base := e.Player()
	giveItems(e,
		component.Item{Name: "Sword", Kind: component.ItemWeapon, Power: 2},
		component.Item{Name: "Chain Mail", Kind: component.ItemArmor, Power: 2})

	e.EquipItem(0)
	e.EquipItem(0)
	p := e.Player()
	if p.Attack != base.Attack+2 {
		t.Errorf("attack %d, want %d", p.Attack, base.Attack+2)
	}
	if p.Defense != base.Defense+2 {
		t.Errorf("defense %d, want %d", p.Defense, base.Defense+2)
	}
}

func TestEquipRejectsConsumables(t *testing.T) {
	e := newTestEngine(42)
	giveItems(e, component.Item{Name: "Health Potion", Kind: component.ItemPotion, Power: 10})

	e.EquipItem(0)
	inv := e.Inventory()
	if inv.Weapon != "" || inv.Armor != "" {
		t.Error("consumable ended up in an equipment slot")
	}
	if len(inv.Items) != 1 {
		t.Error("rejected equip changed the bag")
	}
	if lastMessage(e) != "You can't equip the Health Potion." {
		t.Errorf("unexpected message %q", lastMessage(e))
	}
}

func TestInvalidItemIndex(t *testing.T) {
	e := newTestEngine(42)
	for _, op := range []func(int){e.EquipItem, e.UseItem, e.DropItem} {
		op(99)
		if lastMessage(e) != "Invalid item index." {
			t.Errorf("unexpected message %q", lastMessage(e))
		}
		op(-1)
		if lastMessage(e) != "Invalid item index." {
			t.Errorf("unexpected message %q", lastMessage(e))
		}
	}
}

func TestUsePotionHealsCapped(t *testing.T) {
	e := newTestEngine(42)
	hp := e.world.Get(e.player, component.CHealth).(component.Health)
	hp.Current = hp.Max - 4
	e.world.Add(e.player, hp)
	giveItems(e, component.Item{Name: "Health Potion", Kind: component.ItemPotion, Power: 10})

	e.UseItem(0)
	got := e.world.Get(e.player, component.CHealth).(component.Health)
	if got.Current != got.Max {
		t.Errorf("HP %d/%d after potion, want full", got.Current, got.Max)
	}
	if len(e.Inventory().Items) != 0 {
		t.Error("potion not consumed")
	}
}

func TestUseScrollNoTargetKeepsScroll(t *testing.T) {
	e := newTestEngine(42)
	// Push every monster far outside the scroll radius.
	for _, id := range e.monsters {
		e.world.Add(id, component.Position{X: 500, Y: 500})
	}
	giveItems(e, component.Item{Name: "Lightning Scroll", Kind: component.ItemScroll, Power: 20, Range: 5.0})

	e.UseItem(0)
	if lastMessage(e) != "No monster in range." {
		t.Errorf("unexpected message %q", lastMessage(e))
	}
	if len(e.Inventory().Items) != 1 {
		t.Error("scroll consumed with no target in range")
	}
}

func TestUseScrollStrikesClosestMonster(t *testing.T) {
	e := newTestEngine(42)
	if len(e.monsters) < 2 {
		t.Skip("need two monsters on this floor")
	}
	p := e.Player()
	near, far := e.monsters[0], e.monsters[1]
	e.world.Add(near, component.Position{X: p.X + 2, Y: p.Y})
	e.world.Add(far, component.Position{X: p.X + 4, Y: p.Y})
	for _, id := range e.monsters[2:] {
		e.world.Add(id, component.Position{X: 500, Y: 500})
	}

	nearHP := e.world.Get(near, component.CHealth).(component.Health).Current
	farHP := e.world.Get(far, component.CHealth).(component.Health).Current
	giveItems(e, component.Item{Name: "Lightning Scroll", Kind: component.ItemScroll, Power: 5, Range: 5.0})

	e.UseItem(0)
	if got := e.world.Get(near, component.CHealth).(component.Health).Current; got != nearHP-5 {
		t.Errorf("closest monster HP %d, want %d", got, nearHP-5)
	}
	if got := e.world.Get(far, component.CHealth).(component.Health).Current; got != farHP {
		t.Error("scroll struck a monster that was not the closest")
	}
	if len(e.Inventory().Items) != 0 {
		t.Error("scroll not consumed after striking")
	}
}

func TestUseScrollKillAwardsXP(t *testing.T) {
	e := newTestEngine(42)
	if len(e.monsters) == 0 {
		t.Skip("no monsters generated on this floor")
	}
	p := e.Player()
	victim := e.monsters[0]
	e.world.Add(victim, component.Position{X: p.X + 1, Y: p.Y})
	for _, id := range e.monsters[1:] {
		e.world.Add(id, component.Position{X: 500, Y: 500})
	}
	hp := e.world.Get(victim, component.CHealth).(component.Health)
	hp.Current = 1
	e.world.Add(victim, hp)

	xpBefore := e.Player().XP
	giveItems(e, component.Item{Name: "Lightning Scroll", Kind: component.ItemScroll, Power: 20, Range: 5.0})
	e.UseItem(0)

	if got := e.Player().XP; got != xpBefore+50 {
		t.Errorf("XP %d after scroll kill, want %d", got, xpBefore+50)
	}
}

func TestDropItemLandsAtFeet(t *testing.T) {
	e := newTestEngine(42)
	giveItems(e, component.Item{Name: "Sword", Kind: component.ItemWeapon, Symbol: '/', Power: 2})

	p := e.Player()
	e.DropItem(0)
	if len(e.Inventory().Items) != 0 {
		t.Error("dropped item still in the bag")
	}
	found := false
	for _, it := range e.GroundItems() {
		if it.Name == "Sword" && it.X == p.X && it.Y == p.Y {
			found = true
		}
	}
	if !found {
		t.Error("dropped item not on the ground at the player's feet")
	}
}
