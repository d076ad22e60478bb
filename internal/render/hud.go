package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"undervault/internal/engine"
)

const hudHeight = 5

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(e *engine.Engine) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	r.drawHLine(hudY, tcell.ColorGray)

	p := e.Player()
	statusLine := fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Lv:%d XP:%d/%d  Floor: %d",
		p.HP, p.MaxHP, p.Attack, p.Defense, p.Level, p.XP, p.NextLevelXP, p.FloorIndex+1)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	messages := e.Messages()
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// DrawInventory renders the bag overlay with a cursor on the selected
// item and the equipped slots underneath.
func (r *Renderer) DrawInventory(e *engine.Engine, cursor int) {
	inv := e.Inventory()

	boxW := 36
	boxH := len(inv.Items) + 6
	r.drawBox(2, 1, boxW, boxH)

	title := fmt.Sprintf(" Inventory (%d/%d) ", len(inv.Items), inv.Capacity)
	r.drawText(4, 1, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	if len(inv.Items) == 0 {
		r.drawText(4, 3, "(empty)", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	for i, item := range inv.Items {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		prefix := "  "
		if i == cursor {
			style = style.Reverse(true)
			prefix = "> "
		}
		line := fmt.Sprintf("%s%c %s", prefix, item.Symbol, item.Name)
		r.drawText(4, 3+i, line, style)
	}

	slotY := 3 + len(inv.Items) + 1
	weapon, armor := inv.Weapon, inv.Armor
	if weapon == "" {
		weapon = "-"
	}
	if armor == "" {
		armor = "-"
	}
	r.drawText(4, slotY, fmt.Sprintf("Wielding: %s", weapon), tcell.StyleDefault.Foreground(tcell.ColorLightCyan))
	r.drawText(4, slotY+1, fmt.Sprintf("Wearing:  %s", armor), tcell.StyleDefault.Foreground(tcell.ColorLightCyan))

	r.drawText(4, slotY+2, "[e]quip [u]se [d]rop [Esc] close", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

// DrawDeath renders the game-over overlay.
func (r *Renderer) DrawDeath(e *engine.Engine) {
	w, h := r.screen.Size()
	p := e.Player()

	lines := []string{
		"You have died.",
		fmt.Sprintf("You reached floor %d at level %d.", p.FloorIndex+1, p.Level),
		"",
		"[R] restart   [Q] quit",
	}
	for i, line := range lines {
		x := (w - runewidth.StringWidth(line)) / 2
		r.drawText(x, h/2-2+i, line, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	r.screen.Show()
}

func (r *Renderer) drawBox(x, y, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := ' '
			switch {
			case dy == 0 || dy == h-1:
				ch = '─'
			case dx == 0 || dx == w-1:
				ch = '│'
			}
			switch {
			case dx == 0 && dy == 0:
				ch = '┌'
			case dx == w-1 && dy == 0:
				ch = '┐'
			case dx == 0 && dy == h-1:
				ch = '└'
			case dx == w-1 && dy == h-1:
				ch = '┘'
			}
			r.screen.SetContent(x+dx, y+dy, ch, nil, style)
		}
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
