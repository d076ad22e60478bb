package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionWait
	ActionInventory
	ActionDescend
	ActionAscend
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case '.':
		return ActionWait
	case 'i', 'I':
		return ActionInventory
	case '>':
		return ActionDescend
	case '<':
		return ActionAscend
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// InventoryAction is a key command while the bag overlay is open.
type InventoryAction uint8

const (
	InvNone InventoryAction = iota
	InvUp
	InvDown
	InvEquip
	InvUse
	InvDrop
	InvClose
)

// keyToInventoryAction maps a key event to an overlay command.
func keyToInventoryAction(ev *tcell.EventKey) InventoryAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return InvUp
	case tcell.KeyDown:
		return InvDown
	case tcell.KeyEscape:
		return InvClose
	}
	switch ev.Rune() {
	case 'k', 'K':
		return InvUp
	case 'j', 'J':
		return InvDown
	case 'e', 'E':
		return InvEquip
	case 'u', 'U':
		return InvUse
	case 'd', 'D':
		return InvDrop
	case 'i', 'I', 'q', 'Q':
		return InvClose
	}
	return InvNone
}
