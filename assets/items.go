package assets

import (
	"math/rand"

	"undervault/internal/component"

	"github.com/gdamore/tcell/v2"
)

// NewSword returns the basic weapon (+2 attack while equipped).
func NewSword() component.Item {
	return component.Item{
		Name:   "Sword",
		Kind:   component.ItemWeapon,
		Symbol: '/',
		Color:  tcell.ColorSkyblue,
		Power:  2,
	}
}

// NewChainMail returns the basic armor (+2 defense while equipped).
func NewChainMail() component.Item {
	return component.Item{
		Name:   "Chain Mail",
		Kind:   component.ItemArmor,
		Symbol: '[',
		Color:  tcell.ColorLightGray,
		Power:  2,
	}
}

// NewHealthPotion returns a consumable that restores 10 HP.
func NewHealthPotion() component.Item {
	return component.Item{
		Name:   "Health Potion",
		Kind:   component.ItemPotion,
		Symbol: '!',
		Color:  tcell.ColorPink,
		Power:  10,
	}
}

// NewLightningScroll returns a consumable that strikes the closest living
// monster within range for 20 damage.
func NewLightningScroll() component.Item {
	return component.Item{
		Name:   "Lightning Scroll",
		Kind:   component.ItemScroll,
		Symbol: '?',
		Color:  tcell.ColorYellow,
		Power:  20,
		Range:  5.0,
	}
}

// RandomItem draws one item from the catalog with equal probability.
func RandomItem(rng *rand.Rand) component.Item {
	switch rng.Intn(4) {
	case 0:
		return NewSword()
	case 1:
		return NewChainMail()
	case 2:
		return NewHealthPotion()
	default:
		return NewLightningScroll()
	}
}
