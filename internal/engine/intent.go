package engine

// IntentKind enumerates the discrete player actions the presentation
// layer may submit.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMoveN
	IntentMoveS
	IntentMoveE
	IntentMoveW
	IntentWait
	IntentDescend // confirm taking the down staircase underfoot
	IntentAscend  // confirm taking the up staircase underfoot
	IntentEquip   // equip bag item Index
	IntentUse     // use bag item Index
	IntentDrop    // drop bag item Index
)

// Intent is one player action request; Index selects an inventory slot
// for the item operations and is otherwise ignored.
type Intent struct {
	Kind  IntentKind
	Index int
}

// moveDelta returns the step for a movement intent.
func moveDelta(k IntentKind) (int, int) {
	switch k {
	case IntentMoveN:
		return 0, -1
	case IntentMoveS:
		return 0, 1
	case IntentMoveE:
		return 1, 0
	case IntentMoveW:
		return -1, 0
	}
	return 0, 0
}
