package render

import (
	"github.com/gdamore/tcell/v2"

	"undervault/internal/engine"
)

// Renderer draws the game world onto a tcell screen. It consumes the
// engine's read-only views; the simulation state never leaks in.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	// Reserve bottom 5 rows for the HUD.
	viewH := h - hudHeight
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, viewH),
	}
}

// Resize refits the camera after a terminal resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudHeight
}

// DrawFrame renders the map, loot, monsters, the player, and the HUD,
// then flushes the screen.
func (r *Renderer) DrawFrame(e *engine.Engine) {
	player := e.Player()
	r.camera.Center(player.X, player.Y)

	r.screen.Clear()
	r.drawMap(e)
	r.drawItems(e)
	r.drawMonsters(e)
	r.drawPlayer(player)
	r.DrawHUD(e)
	r.screen.Show()
}

func (r *Renderer) drawMap(e *engine.Engine) {
	f := e.Floor()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, color := tileGlyph(f.At(x, y).Kind)
			style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawItems(e *engine.Engine) {
	for _, item := range e.GroundItems() {
		sx, sy, onScreen := r.camera.WorldToScreen(item.X, item.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(item.Color).Background(tcell.ColorBlack)
		r.screen.SetContent(sx, sy, item.Symbol, nil, style)
	}
}

func (r *Renderer) drawMonsters(e *engine.Engine) {
	for _, m := range e.Monsters() {
		sx, sy, onScreen := r.camera.WorldToScreen(m.X, m.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(m.Color).Background(tcell.ColorBlack)
		r.screen.SetContent(sx, sy, m.Symbol, nil, style)
	}
}

// drawPlayer renders the player last so it sits above loot and corpses.
func (r *Renderer) drawPlayer(p engine.PlayerView) {
	sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	r.screen.SetContent(sx, sy, '@', nil, style)
}
