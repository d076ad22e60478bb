package engine

import (
	"undervault/internal/component"
	"undervault/internal/dungeon"
	"undervault/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// MonsterState is one monster's mutable state inside a floor snapshot.
type MonsterState struct {
	X, Y       int
	HP, MaxHP  int
	Attack     int
	Defense    int
	Perception int
	Speed      float64
	LastAction float64
	Name       string
	Symbol     rune
	Color      tcell.Color
}

// ItemState is one ground item inside a floor snapshot.
type ItemState struct {
	X, Y int
	Item component.Item
}

// FloorState is the persisted mutable contents of a floor: whatever
// monsters and loot were present when the player left. It is captured on
// exit and restored verbatim on return, so off-screen floors neither
// respawn nor heal.
type FloorState struct {
	Monsters []MonsterState
	Items    []ItemState
}

// FloorManager owns the set of generated floors. Floors are created
// lazily on first transition into their index and cached for the session;
// a cached floor is never regenerated, which keeps stair coordinates
// stable across revisits.
type FloorManager struct {
	cfg     Config
	floors  map[int]*dungeon.Floor
	states  map[int]*FloorState
	current int
}

// NewFloorManager creates the manager and generates floor 0.
func NewFloorManager(cfg Config) *FloorManager {
	m := &FloorManager{
		cfg:    cfg,
		floors: make(map[int]*dungeon.Floor),
		states: make(map[int]*FloorState),
	}
	m.floors[0] = m.generate(0, nil)
	return m
}

func (m *FloorManager) generate(level int, inheritedUp *dungeon.Point) *dungeon.Floor {
	return generate.Generate(&generate.Config{
		Width:             m.cfg.MapWidth,
		Height:            m.cfg.MapHeight,
		Level:             level,
		MaxDepth:          m.cfg.MaxDepth,
		Attempts:          roomAttempts,
		MinRoomSize:       minRoomSize,
		MaxRoomSize:       maxRoomSize,
		RowBand:           rowBand,
		Seed:              m.cfg.Seed,
		InheritedUpStairs: inheritedUp,
	})
}

// Current returns the active floor.
func (m *FloorManager) Current() *dungeon.Floor {
	return m.floors[m.current]
}

// CurrentIndex returns the active floor's index.
func (m *FloorManager) CurrentIndex() int {
	return m.current
}

// Transition switches to the target floor and returns the cell the player
// arrives on: the destination's up stairs when descending, its down
// stairs when ascending — always the staircase leading back where the
// player came from. Out-of-range targets, and degenerate destinations
// with no arrival staircase, are refused with no state change.
//
// When descending to a floor that has never been generated, the source
// floor's down-stairs coordinate is handed to the generator so the new
// floor's up stairs align with it.
func (m *FloorManager) Transition(target int) (*dungeon.Point, bool) {
	if target < 0 || target >= m.cfg.MaxDepth {
		return nil, false
	}
	descending := target > m.current
	if _, ok := m.floors[target]; !ok {
		var inherited *dungeon.Point
		if descending {
			inherited = m.Current().DownStairs
		}
		m.floors[target] = m.generate(target, inherited)
	}

	dest := m.floors[target]
	var spawn *dungeon.Point
	if descending {
		spawn = dest.UpStairs
	} else {
		spawn = dest.DownStairs
	}
	if spawn == nil {
		return nil, false
	}
	m.current = target
	return spawn, true
}

// SaveState records the floor's mutable contents under its index.
func (m *FloorManager) SaveState(index int, st *FloorState) {
	m.states[index] = st
}

// State returns the persisted snapshot for a floor, if one exists. A
// floor without a snapshot has never been visited and must be freshly
// populated.
func (m *FloorManager) State(index int) (*FloorState, bool) {
	st, ok := m.states[index]
	return st, ok
}
