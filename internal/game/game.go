package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"undervault/internal/engine"
	"undervault/internal/render"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateInventory
	StateDead
)

// frameInterval drives the simulation clock while the player idles, so
// monster cooldowns elapse in real time.
const frameInterval = 33 * time.Millisecond

// Game is the top-level orchestrator: it owns the terminal, translates
// key events into engine intents, and redraws on a fixed cadence.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	eng      *engine.Engine
	cfg      engine.Config
	state    GameState
	cursor   int // inventory overlay selection
	start    time.Time
}

// New creates a Game on a fresh local terminal screen.
func New(cfg engine.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates a Game on an existing initialized screen. Used by
// the SSH server, which builds a screen from the session tty.
func NewWithScreen(screen tcell.Screen, cfg engine.Config) *Game {
	g := &Game{
		screen: screen,
		cfg:    cfg,
	}
	g.resetForRun()
	return g
}

// resetForRun starts a fresh dungeon run.
func (g *Game) resetForRun() {
	g.eng = engine.New(g.cfg)
	g.renderer = render.NewRenderer(g.screen)
	g.state = StatePlaying
	g.cursor = 0
	g.start = time.Now()
}

// now returns the simulation clock: seconds since the run began.
func (g *Game) now() float64 {
	return time.Since(g.start).Seconds()
}

// Run is the main loop. A background ticker posts interrupt events so
// monsters keep acting while the player idles; PollEvent wakes on both
// ticks and key presses. Returns when the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-stop:
				return
			}
		}
	}()

	for {
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventInterrupt:
			if g.state == StatePlaying {
				g.eng.Tick(g.now())
			}
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return
			}
		}
		g.draw()
	}
}

// handleKey dispatches one key event for the current state. Returns
// false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch g.state {
	case StatePlaying:
		return g.handlePlayingKey(ev)
	case StateInventory:
		g.handleInventoryKey(ev)
	case StateDead:
		switch ev.Rune() {
		case 'r', 'R':
			g.resetForRun()
		case 'q', 'Q':
			return false
		}
		if ev.Key() == tcell.KeyEscape {
			return false
		}
	}
	return true
}

func (g *Game) handlePlayingKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionInventory:
		g.state = StateInventory
		g.cursor = 0
		return true
	case ActionNone:
		return true
	}

	g.eng.Apply(engine.Intent{Kind: actionToIntent(action)}, g.now())
	if !g.eng.PlayerAlive() {
		g.state = StateDead
	}
	return true
}

func (g *Game) handleInventoryKey(ev *tcell.EventKey) {
	inv := g.eng.Inventory()
	switch keyToInventoryAction(ev) {
	case InvUp:
		if g.cursor > 0 {
			g.cursor--
		}
	case InvDown:
		if g.cursor < len(inv.Items)-1 {
			g.cursor++
		}
	case InvEquip:
		g.eng.Apply(engine.Intent{Kind: engine.IntentEquip, Index: g.cursor}, g.now())
	case InvUse:
		g.eng.Apply(engine.Intent{Kind: engine.IntentUse, Index: g.cursor}, g.now())
	case InvDrop:
		g.eng.Apply(engine.Intent{Kind: engine.IntentDrop, Index: g.cursor}, g.now())
	case InvClose:
		g.state = StatePlaying
		return
	}

	// Clamp after the bag shrinks (use/drop) and catch deaths from
	// monster turns that ran inside Apply.
	if n := len(g.eng.Inventory().Items); g.cursor >= n && n > 0 {
		g.cursor = n - 1
	}
	if !g.eng.PlayerAlive() {
		g.state = StateDead
	}
}

func (g *Game) draw() {
	switch g.state {
	case StatePlaying:
		g.renderer.DrawFrame(g.eng)
	case StateInventory:
		g.renderer.DrawFrame(g.eng)
		g.renderer.DrawInventory(g.eng, g.cursor)
	case StateDead:
		g.renderer.DrawFrame(g.eng)
		g.renderer.DrawDeath(g.eng)
	}
}

// actionToIntent converts a playing-state action to an engine intent.
func actionToIntent(a Action) engine.IntentKind {
	switch a {
	case ActionMoveN:
		return engine.IntentMoveN
	case ActionMoveS:
		return engine.IntentMoveS
	case ActionMoveE:
		return engine.IntentMoveE
	case ActionMoveW:
		return engine.IntentMoveW
	case ActionWait:
		return engine.IntentWait
	case ActionDescend:
		return engine.IntentDescend
	case ActionAscend:
		return engine.IntentAscend
	}
	return engine.IntentNone
}
