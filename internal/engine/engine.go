// Package engine implements the dungeon-crawl simulation core: floor
// management, the speed-based turn scheduler, monster AI, combat, and
// progression. It has no presentation dependencies; front ends submit
// player intents with a current time and read state back through views.
package engine

import (
	"fmt"
	"math/rand"

	"undervault/internal/component"
	"undervault/internal/dungeon"
	"undervault/internal/ecs"
	"undervault/internal/factory"
	"undervault/internal/generate"
	"undervault/internal/system"
)

// Engine is the simulation orchestrator. All methods run on the caller's
// goroutine; a tick is fully synchronous.
type Engine struct {
	cfg      Config
	world    *ecs.World
	floors   *FloorManager
	player   ecs.EntityID
	monsters []ecs.EntityID // live roster in spawn order; processed sequentially
	rng      *rand.Rand
	messages []string
	now      float64
}

// New builds an engine, generates floor 0, and places the player in the
// spawn room.
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:    cfg,
		world:  ecs.NewWorld(),
		floors: NewFloorManager(cfg),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}

	x, y := e.spawnPosition()
	e.player = factory.NewPlayer(e.world, x, y)
	e.populateCurrent()
	e.addMessage("You descend into the undervault.")
	return e
}

// spawnPosition returns the spawn room's center, falling back to the
// first walkable tile on a degenerate floor and (0,0) on a solid one.
func (e *Engine) spawnPosition() (int, int) {
	f := e.floors.Current()
	if room, ok := f.SpawnRoom(); ok {
		return room.Center()
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.IsWalkable(x, y) {
				return x, y
			}
		}
	}
	return 0, 0
}

// Tick advances the simulation with no player input: monsters still act
// when their cooldowns allow.
func (e *Engine) Tick(now float64) {
	e.Apply(Intent{}, now)
}

// Apply runs one synchronous simulation tick: resolve the player intent,
// process monster turns against a start-of-tick position snapshot, then
// purge actors that died this tick.
func (e *Engine) Apply(intent Intent, now float64) {
	e.now = now
	if system.Alive(e.world, e.player) {
		e.handleIntent(intent)
	}
	e.processMonsters()
	e.purgeDead()
}

func (e *Engine) handleIntent(intent Intent) {
	switch intent.Kind {
	case IntentMoveN, IntentMoveS, IntentMoveE, IntentMoveW:
		e.handleMove(intent.Kind)
	case IntentWait:
		if system.CanAct(e.world, e.player, e.now) {
			system.MarkActed(e.world, e.player, e.now)
		}
	case IntentDescend:
		e.handleStairs(dungeon.TileStairsDown, e.floors.CurrentIndex()+1, "There are no stairs down here.")
	case IntentAscend:
		e.handleStairs(dungeon.TileStairsUp, e.floors.CurrentIndex()-1, "There are no stairs up here.")
	case IntentEquip:
		e.EquipItem(intent.Index)
	case IntentUse:
		e.UseItem(intent.Index)
	case IntentDrop:
		e.DropItem(intent.Index)
	}
}

func (e *Engine) handleMove(k IntentKind) {
	if !system.CanAct(e.world, e.player, e.now) {
		return
	}
	dx, dy := moveDelta(k)
	result, target := system.TryMove(e.world, e.floors.Current(), e.player, dx, dy)
	switch result {
	case system.MoveOK:
		system.MarkActed(e.world, e.player, e.now)
		e.pickupUnderfoot()
	case system.MoveAttack:
		if !e.world.Has(target, component.CTagMonster) {
			return
		}
		name := e.entityName(target)
		res := system.Attack(e.world, e.player, target)
		if res.Killed {
			e.addMessage(fmt.Sprintf("You kill the %s! (+%d XP)", name, res.XPAwarded))
			if res.NewLevel > 0 {
				e.addMessage(fmt.Sprintf("You reach level %d!", res.NewLevel))
			}
		} else {
			e.addMessage(fmt.Sprintf("You hit the %s for %d damage.", name, res.Damage))
		}
		system.MarkActed(e.world, e.player, e.now)
	case system.MoveBlocked:
		// walking into a wall costs nothing
	}
}

// handleStairs confirms a staircase transition. The player must stand on
// the matching staircase tile and the cooldown gate applies as for any
// other action.
func (e *Engine) handleStairs(kind dungeon.TileKind, target int, missing string) {
	pos := e.playerPos()
	if e.floors.Current().At(pos.X, pos.Y).Kind != kind {
		e.addMessage(missing)
		return
	}
	if !system.CanAct(e.world, e.player, e.now) {
		return
	}

	from := e.floors.CurrentIndex()
	st := e.captureFloorState()
	spawn, ok := e.floors.Transition(target)
	if !ok {
		// Out-of-range targets cannot happen from a staircase; a refusal
		// here means the destination generated without an arrival stair.
		e.addMessage("The stairway is choked with rubble.")
		return
	}
	e.floors.SaveState(from, st)

	e.clearFloorEntities()
	if saved, revisit := e.floors.State(target); revisit {
		e.restoreFloorState(saved)
	} else {
		e.populateCurrent()
	}

	e.world.Add(e.player, component.Position{X: spawn.X, Y: spawn.Y})
	system.MarkActed(e.world, e.player, e.now)
	if target > from {
		e.addMessage(fmt.Sprintf("You descend to floor %d.", target+1))
	} else {
		e.addMessage(fmt.Sprintf("You climb back to floor %d.", target+1))
	}
	e.pickupUnderfoot()
}

// processMonsters advances every monster whose cooldown has elapsed, in
// roster order. Monster-vs-monster collision uses a position snapshot
// taken before any monster moves this tick, so one monster's movement
// cannot affect another's collision test mid-tick.
func (e *Engine) processMonsters() {
	playerPos := e.playerPos()
	playerCell := dungeon.Point{X: playerPos.X, Y: playerPos.Y}
	f := e.floors.Current()

	occupied := make(map[dungeon.Point]ecs.EntityID, len(e.monsters))
	for _, id := range e.monsters {
		if !system.Alive(e.world, id) {
			continue
		}
		p := e.world.Get(id, component.CPosition).(component.Position)
		occupied[dungeon.Point{X: p.X, Y: p.Y}] = id
	}

	playerAlive := system.Alive(e.world, e.player)
	for _, id := range e.monsters {
		if !system.Alive(e.world, id) || !system.CanAct(e.world, id, e.now) {
			continue
		}
		p := e.world.Get(id, component.CPosition).(component.Position)
		perception := e.world.Get(id, component.CCombat).(component.Combat).Perception

		choice := system.MonsterChoice(f, dungeon.Point{X: p.X, Y: p.Y}, playerCell, perception, e.rng)
		switch choice.Kind {
		case system.ChoiceAttack:
			if playerAlive {
				res := system.Attack(e.world, id, e.player)
				e.addMessage(fmt.Sprintf("The %s hits you for %d damage.", e.entityName(id), res.Damage))
				if res.Killed {
					playerAlive = false
					e.addMessage("You die...")
				}
			}
		case system.ChoiceStep:
			dest := dungeon.Point{X: choice.X, Y: choice.Y}
			holder, taken := occupied[dest]
			if f.IsWalkable(dest.X, dest.Y) && (!taken || holder == id) && dest != playerCell {
				e.world.Add(id, component.Position{X: dest.X, Y: dest.Y})
			}
		}
		// A blocked proposal still spends the action.
		system.MarkActed(e.world, id, e.now)
	}
}

// purgeDead removes monsters killed this tick from the roster and the
// world. Deferred to tick end so a dying monster's name and position stay
// readable while the tick's messages are built.
func (e *Engine) purgeDead() {
	live := e.monsters[:0]
	for _, id := range e.monsters {
		if system.Alive(e.world, id) {
			live = append(live, id)
			continue
		}
		e.world.DestroyEntity(id)
	}
	e.monsters = live
}

// pickupUnderfoot moves any ground item on the player's cell into the
// bag. Walking over loot is the only pickup mechanism.
func (e *Engine) pickupUnderfoot() {
	pos := e.playerPos()
	for _, id := range e.world.Query(component.CGroundItem, component.CPosition) {
		ip := e.world.Get(id, component.CPosition).(component.Position)
		if ip.X != pos.X || ip.Y != pos.Y {
			continue
		}
		item := e.world.Get(id, component.CGroundItem).(component.GroundItem).Item
		inv := e.inventory()
		if inv.Full() {
			e.addMessage("Your pack is full.")
			return
		}
		inv.Items = append(inv.Items, item)
		e.world.Add(e.player, inv)
		e.world.DestroyEntity(id)
		e.addMessage(fmt.Sprintf("You pick up the %s.", item.Name))
	}
}

// populateCurrent spawns fresh monsters and loot on a first-visit floor.
func (e *Engine) populateCurrent() {
	pop := generate.Populate(e.floors.Current(), e.rng)
	for _, ms := range pop.Monsters {
		id := factory.NewMonster(e.world, ms.Def, ms.X, ms.Y)
		e.monsters = append(e.monsters, id)
	}
	for _, is := range pop.Items {
		factory.NewGroundItem(e.world, is.Item, is.X, is.Y)
	}
}

// captureFloorState snapshots the current floor's monsters and ground
// items for persistence.
func (e *Engine) captureFloorState() *FloorState {
	st := &FloorState{}
	for _, id := range e.monsters {
		if !system.Alive(e.world, id) {
			continue
		}
		pos := e.world.Get(id, component.CPosition).(component.Position)
		hp := e.world.Get(id, component.CHealth).(component.Health)
		cb := e.world.Get(id, component.CCombat).(component.Combat)
		ini := e.world.Get(id, component.CInitiative).(component.Initiative)
		rend := e.world.Get(id, component.CRenderable).(component.Renderable)
		st.Monsters = append(st.Monsters, MonsterState{
			X: pos.X, Y: pos.Y,
			HP: hp.Current, MaxHP: hp.Max,
			Attack: cb.Attack, Defense: cb.Defense, Perception: cb.Perception,
			Speed: ini.Speed, LastAction: ini.LastAction,
			Name: rend.Name, Symbol: rend.Symbol, Color: rend.Color,
		})
	}
	for _, id := range e.world.Query(component.CGroundItem, component.CPosition) {
		pos := e.world.Get(id, component.CPosition).(component.Position)
		item := e.world.Get(id, component.CGroundItem).(component.GroundItem).Item
		st.Items = append(st.Items, ItemState{X: pos.X, Y: pos.Y, Item: item})
	}
	return st
}

// clearFloorEntities removes all monsters and ground items from the
// world ahead of a floor switch. The player entity persists.
func (e *Engine) clearFloorEntities() {
	for _, id := range e.monsters {
		e.world.DestroyEntity(id)
	}
	e.monsters = nil
	for _, id := range e.world.Query(component.CGroundItem) {
		e.world.DestroyEntity(id)
	}
}

// restoreFloorState rebuilds the live roster from a snapshot, replacing
// it wholesale — restored and freshly generated monsters are never mixed.
func (e *Engine) restoreFloorState(st *FloorState) {
	for _, ms := range st.Monsters {
		id := e.world.CreateEntity()
		e.world.Add(id, component.Position{X: ms.X, Y: ms.Y})
		e.world.Add(id, component.Health{Current: ms.HP, Max: ms.MaxHP})
		e.world.Add(id, component.Combat{Attack: ms.Attack, Defense: ms.Defense, Perception: ms.Perception})
		e.world.Add(id, component.Initiative{Speed: ms.Speed, LastAction: ms.LastAction})
		e.world.Add(id, component.Renderable{Name: ms.Name, Symbol: ms.Symbol, Color: ms.Color, RenderOrder: 5})
		e.world.Add(id, component.TagMonster{})
		e.world.Add(id, component.TagBlocking{})
		e.monsters = append(e.monsters, id)
	}
	for _, is := range st.Items {
		factory.NewGroundItem(e.world, is.Item, is.X, is.Y)
	}
}

func (e *Engine) playerPos() component.Position {
	c := e.world.Get(e.player, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func (e *Engine) inventory() component.Inventory {
	return e.world.Get(e.player, component.CInventory).(component.Inventory)
}

func (e *Engine) entityName(id ecs.EntityID) string {
	c := e.world.Get(id, component.CRenderable)
	if c == nil {
		return "creature"
	}
	return c.(component.Renderable).Name
}

// addMessage appends to the bounded event log, dropping the oldest
// entries beyond the cap.
func (e *Engine) addMessage(msg string) {
	e.messages = append(e.messages, msg)
	if len(e.messages) > maxMessages {
		e.messages = e.messages[len(e.messages)-maxMessages:]
	}
}
