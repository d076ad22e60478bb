package factory

import (
	"undervault/assets"
	"undervault/internal/component"
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Player starting stats.
const (
	PlayerMaxHP      = 30
	PlayerAttack     = 5
	PlayerDefense    = 2
	PlayerPerception = 8
	PlayerSpeed      = 5.0
	PlayerBagSize    = 20
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: PlayerMaxHP, Max: PlayerMaxHP})
	w.Add(id, component.Combat{Attack: PlayerAttack, Defense: PlayerDefense, Perception: PlayerPerception})
	w.Add(id, component.Initiative{Speed: PlayerSpeed})
	w.Add(id, component.Progression{Level: 1, NextLevelXP: 100})
	w.Add(id, component.Inventory{Capacity: PlayerBagSize})
	w.Add(id, component.Renderable{
		Name:        "Player",
		Symbol:      '@',
		Color:       tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewMonster creates a monster entity from a bestiary definition.
func NewMonster(w *ecs.World, def assets.MonsterDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Combat{Attack: def.Attack, Defense: def.Defense, Perception: def.Perception})
	w.Add(id, component.Initiative{Speed: def.Speed})
	w.Add(id, component.Renderable{
		Name:        def.Name,
		Symbol:      def.Symbol,
		Color:       def.Color,
		RenderOrder: 5,
	})
	w.Add(id, component.TagMonster{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewGroundItem creates an entity for an item lying on the floor.
func NewGroundItem(w *ecs.World, item component.Item, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.GroundItem{Item: item})
	w.Add(id, component.Renderable{
		Name:        item.Name,
		Symbol:      item.Symbol,
		Color:       item.Color,
		RenderOrder: 2,
	})
	return id
}
