package render

import (
	"github.com/gdamore/tcell/v2"

	"undervault/internal/dungeon"
)

// tileGlyph maps a tile kind to its glyph and foreground color.
func tileGlyph(k dungeon.TileKind) (rune, tcell.Color) {
	switch k {
	case dungeon.TileWall:
		return '#', tcell.ColorDarkGray
	case dungeon.TileFloor:
		return '.', tcell.ColorGray
	case dungeon.TileStairsUp:
		return '<', tcell.ColorYellow
	case dungeon.TileStairsDown:
		return '>', tcell.ColorYellow
	default:
		return ' ', tcell.ColorBlack
	}
}
