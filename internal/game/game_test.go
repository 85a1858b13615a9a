package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"district9/internal/config"
	"district9/internal/input"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(newSimScreen(), config.Default(), rand.New(rand.NewSource(1)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(g.scene.Teardown)
	return g
}

func TestKeyForMapping(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want input.Key
	}{
		{tcell.KeyLeft, 0, input.KeyLeft},
		{tcell.KeyRight, 0, input.KeyRight},
		{tcell.KeyUp, 0, input.KeyUp},
		{tcell.KeyDown, 0, input.KeyDown},
		{tcell.KeyRune, 'a', input.KeyLeft},
		{tcell.KeyRune, 'D', input.KeyRight},
		{tcell.KeyRune, 'w', input.KeyUp},
		{tcell.KeyRune, 's', input.KeyDown},
		{tcell.KeyRune, ' ', input.KeyAction},
		{tcell.KeyRune, 'e', input.KeyAction},
		{tcell.KeyEnter, 0, input.KeyDismiss},
		{tcell.KeyEscape, 0, input.KeyDismiss},
	}
	for _, tt := range tests {
		got, ok := keyFor(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
		if !ok || got != tt.want {
			t.Errorf("keyFor(%v, %q) = %v, %v; want %v", tt.key, tt.ch, got, ok, tt.want)
		}
	}

	if _, ok := keyFor(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("unbound rune should not map")
	}
	if _, ok := keyFor(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Error("unbound named key should not map")
	}
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t)
	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Ctrl+C should quit")
	}
	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc dismisses dialogue, it must not quit")
	}
}

func TestArrowKeyMovesPlayer(t *testing.T) {
	g := newTestGame(t)
	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	g.HandleEvent(ev)
	g.Step(ev.When())

	if x := g.Scene().PlayerPos().X; x >= 480 {
		t.Errorf("player x = %f, want < 480", x)
	}
}

func TestKeyHoldWindowExpires(t *testing.T) {
	g := newTestGame(t)
	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	g.HandleEvent(ev)
	g.Step(ev.When().Add(time.Second))

	if x := g.Scene().PlayerPos().X; x != 480 {
		t.Errorf("player x = %f, want 480 once the key is no longer held", x)
	}
}

func TestMouseDragDrivesJoystick(t *testing.T) {
	g := newTestGame(t)
	g.HandleEvent(tcell.NewEventMouse(10, 15, tcell.Button1, tcell.ModNone))
	if !g.Scene().Joystick().Active {
		t.Fatal("press on the left half should start the joystick")
	}

	g.HandleEvent(tcell.NewEventMouse(15, 15, tcell.Button1, tcell.ModNone))
	g.Step(time.Now())
	if x := g.Scene().PlayerPos().X; x <= 480 {
		t.Errorf("player x = %f, want > 480 after dragging right", x)
	}

	g.HandleEvent(tcell.NewEventMouse(15, 15, tcell.ButtonNone, tcell.ModNone))
	if g.Scene().Joystick().Active {
		t.Error("release should end the joystick")
	}
}

func TestMouseRightHalfShowsButton(t *testing.T) {
	g := newTestGame(t)
	g.HandleEvent(tcell.NewEventMouse(70, 10, tcell.Button1, tcell.ModNone))
	b := g.Scene().Button()
	if !b.Visible || !b.Armed {
		t.Fatalf("button = %+v, want visible and armed", b)
	}
	g.HandleEvent(tcell.NewEventMouse(70, 10, tcell.ButtonNone, tcell.ModNone))
	if g.Scene().Button().Visible {
		t.Error("release should hide the button")
	}
}

func TestMouseOnHUDIgnored(t *testing.T) {
	g := newTestGame(t)
	g.HandleEvent(tcell.NewEventMouse(10, 22, tcell.Button1, tcell.ModNone))
	if g.Scene().Joystick().Active || g.Scene().Button().Visible {
		t.Error("presses on the HUD should not reach the scene")
	}
	if g.mouseDown {
		t.Error("HUD press should not start a drag")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if !g.Scene().TornDown() {
		t.Error("scene should be torn down when Run returns")
	}
}
