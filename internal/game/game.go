// Package game hosts a scene on a tcell screen: it pumps terminal events
// into the scene's input paths, steps the scene at a fixed rate and draws
// every tick.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"district9/internal/config"
	"district9/internal/input"
	"district9/internal/render"
	"district9/internal/scene"
)

// mousePointer is the pointer ID a terminal mouse reports as.
const mousePointer = 1

// Game is the top-level orchestrator for one screen.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	scene    *scene.Scene
	keys     *input.KeyTracker
	tick     time.Duration
	log      *slog.Logger
	started  time.Time

	mouseDown bool
}

// OpenScreen creates and initializes the local terminal screen with mouse
// reporting on.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return screen, nil
}

// New builds a fresh scene from cfg on an initialized screen.
func New(screen tcell.Screen, cfg config.Tuning, rng *rand.Rand, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.WorldWidth, cfg.WorldHeight),
		scene:    scene.New(cfg, rng, log),
		keys:     input.NewKeyTracker(cfg.KeyHold),
		tick:     cfg.TickInterval(),
		log:      log,
		started:  time.Now(),
	}
}

// Scene is the hosted scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Run pumps events and ticks until the player quits, the screen goes away or
// ctx is done. The scene is torn down before Run returns; the screen is left
// for the caller to finalize.
func (g *Game) Run(ctx context.Context) error {
	defer g.scene.Teardown()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		g.screen.ChannelEvents(events, quit)
		return nil
	})
	grp.Go(func() error {
		defer close(quit)
		return g.loop(ctx, events)
	})
	return grp.Wait()
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	g.renderer.Draw(g.scene)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.HandleEvent(ev) {
				g.log.Debug("player quit", "ticks", g.scene.Ticks())
				return nil
			}
		case now := <-ticker.C:
			g.Step(now)
		}
	}
}

// Step runs one fixed tick at wall time now and draws the result.
func (g *Game) Step(now time.Time) {
	g.scene.Update(g.tick, g.keys.Snapshot(now))
	g.renderer.Draw(g.scene)
}

// HandleEvent feeds one terminal event to the scene. It reports whether the
// player asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.renderer.Draw(g.scene)
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		if k, ok := keyFor(ev); ok {
			g.keys.Press(k, ev.When())
		}
	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
	return false
}

// handleMouse turns left-button transitions into pointer down, move and up.
// Presses on the HUD are ignored; a release anywhere ends the drag.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	p := g.renderer.Camera().ScreenToWorld(x, y)
	ptr := input.Pointer{ID: mousePointer, X: p.X, Y: p.Y}

	switch {
	case pressed && !g.mouseDown:
		if !g.renderer.InView(x, y) {
			return
		}
		g.mouseDown = true
		g.scene.PointerDown(ptr)
	case pressed:
		g.scene.PointerMove(ptr)
	case g.mouseDown:
		g.mouseDown = false
		g.scene.PointerUp(ptr)
	}
}
