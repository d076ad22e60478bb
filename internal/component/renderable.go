package component

import (
	"undervault/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable carries the symbol and color hint the presentation layer uses
// to draw an entity. RenderOrder breaks ties when entities share a cell
// (higher draws on top).
type Renderable struct {
	Name        string
	Symbol      rune
	Color       tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
