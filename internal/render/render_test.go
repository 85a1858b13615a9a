package render

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"district9/assets"
	"district9/internal/config"
	"district9/internal/input"
	"district9/internal/interact"
	"district9/internal/scene"
	"district9/internal/vmath"
)

func newSimScreen() tcell.Screen {
	ss := tcell.NewSimulationScreen("UTF-8")
	_ = ss.Init()
	ss.SetSize(80, 24)
	return ss
}

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	return newTestSceneWith(t, config.Default())
}

func newTestSceneWith(t *testing.T, cfg config.Tuning) *scene.Scene {
	t.Helper()
	s := scene.New(cfg, rand.New(rand.NewSource(1)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(s.Teardown)
	return s
}

// screenRows reads back what was drawn, one string per row.
func screenRows(screen tcell.Screen) []string {
	w, h := screen.Size()
	rows := make([]string, h)
	for y := range h {
		var b strings.Builder
		for x := 0; x < w; {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
			x += max(runewidth.RuneWidth(r), 1)
		}
		rows[y] = b.String()
	}
	return rows
}

func screenContains(screen tcell.Screen, s string) bool {
	for _, row := range screenRows(screen) {
		if strings.Contains(row, s) {
			return true
		}
	}
	return false
}

func TestCameraMapsWorldCorners(t *testing.T) {
	c := NewCamera(960, 640, 80, 21)

	sx, sy, ok := c.WorldToScreen(vmath.V(0, 0))
	assert.True(t, ok)
	assert.Equal(t, 0, sx)
	assert.Equal(t, 0, sy)

	sx, sy, ok = c.WorldToScreen(vmath.V(960, 640))
	assert.True(t, ok)
	assert.Equal(t, 79, sx)
	assert.Equal(t, 20, sy)

	sx, sy, ok = c.WorldToScreen(vmath.V(480, 320))
	assert.True(t, ok)
	assert.Equal(t, 40, sx)
	assert.Equal(t, 10, sy)
}

func TestCameraHidesOffWorld(t *testing.T) {
	c := NewCamera(960, 640, 80, 21)
	for _, p := range []vmath.Vec2{vmath.V(-150, 20), vmath.V(1100, 300), vmath.V(10, -1), vmath.V(10, 641)} {
		_, _, ok := c.WorldToScreen(p)
		assert.False(t, ok, "%v", p)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera(960, 640, 80, 21)
	for _, cell := range [][2]int{{0, 0}, {10, 5}, {79, 20}, {40, 10}} {
		p := c.ScreenToWorld(cell[0], cell[1])
		sx, sy, ok := c.WorldToScreen(p)
		require.True(t, ok)
		assert.Equal(t, cell[0], sx)
		assert.Equal(t, cell[1], sy)
	}
}

func TestCameraResizeFloorsAtOneCell(t *testing.T) {
	c := NewCamera(960, 640, 0, -3)
	assert.Equal(t, 1, c.ViewWidth)
	assert.Equal(t, 1, c.ViewHeight)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Drone: Routine area scan complete.", 12)
	assert.Equal(t, []string{"Drone:", "Routine area", "scan", "complete."}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 12)
	}

	assert.Equal(t, []string{"abcd", "efgh", "ef"}, wrapText("abcdefgh ef", 4))
	assert.Equal(t, []string{"go", "abcdef", "g hi"}, wrapText("go abcdefg hi", 6))
	assert.Equal(t, []string{"日本", "語"}, wrapText("日本語", 4))
	assert.Empty(t, wrapText("   ", 10))
	assert.Nil(t, wrapText("anything", 0))
}

func TestDrawIdleScene(t *testing.T) {
	cfg := config.Default()
	cfg.AmbientCount = 0
	screen := newSimScreen()
	s := newTestSceneWith(t, cfg)
	r := NewRenderer(screen, 960, 640)
	r.Draw(s)

	assert.Equal(t, 21, r.Camera().ViewHeight)
	assert.True(t, screenContains(screen, "District 9"))
	require.Empty(t, s.Nearby())
	assert.Equal(t, idleHint, Hint(s))

	sx, sy, ok := r.Camera().WorldToScreen(s.PlayerPos())
	require.True(t, ok)
	got, _, _, _ := screen.GetContent(sx, sy)
	assert.Equal(t, []rune(assets.Glyph(assets.SpriteHeroFront))[0], got)
}

func TestHintNamesNearestNPC(t *testing.T) {
	cfg := config.Default()
	cfg.AmbientCount = 0
	s := newTestSceneWith(t, cfg)
	for s.PlayerPos().X > 232 {
		s.Update(cfg.TickInterval(), input.Keys{Left: true})
	}
	for s.PlayerPos().Y > 192 {
		s.Update(cfg.TickInterval(), input.Keys{Up: true})
	}
	near := s.Nearby()
	require.NotEmpty(t, near)
	assert.Equal(t, "Delivery#1", near[0].NPC.Name)
	assert.Equal(t, "Space/E: talk to Delivery#1", Hint(s))
}

func TestDrawDialogueOverlay(t *testing.T) {
	screen := newSimScreen()
	s := newTestScene(t)
	for s.PlayerPos().X > 232 {
		s.Update(config.Default().TickInterval(), input.Keys{Left: true})
	}
	for s.PlayerPos().Y > 192 {
		s.Update(config.Default().TickInterval(), input.Keys{Up: true})
	}
	assert.Equal(t, "Space/E: talk to Delivery#1", Hint(s))

	s.Update(config.Default().TickInterval(), input.Keys{Action: true})
	require.Equal(t, interact.StateDisplaying, s.Interaction())

	r := NewRenderer(screen, 960, 640)
	r.Draw(s)
	assert.True(t, screenContains(screen, "Delivery#1"), "the speaker heads the box")
	first := wrapText(s.Dialogue(), 68)[0]
	assert.True(t, screenContains(screen, first), "missing %q", first)
	assert.True(t, screenContains(screen, "Enter/Esc or tap: close"))
}

func TestDrawTouchControls(t *testing.T) {
	screen := newSimScreen()
	s := newTestScene(t)
	r := NewRenderer(screen, 960, 640)

	s.PointerDown(input.Pointer{ID: 1, X: 200, Y: 400})
	s.PointerMove(input.Pointer{ID: 1, X: 230, Y: 400})
	s.PointerDown(input.Pointer{ID: 2, X: 800, Y: 400})
	r.Draw(s)

	sx, sy, ok := r.Camera().WorldToScreen(s.Joystick().Thumb())
	require.True(t, ok)
	got, _, _, _ := screen.GetContent(sx, sy)
	assert.Equal(t, []rune(assets.Glyph(assets.SpriteJoystickThumb))[0], got)

	sx, sy, ok = r.Camera().WorldToScreen(s.Button().Pos)
	require.True(t, ok)
	got, _, _, _ = screen.GetContent(sx, sy)
	assert.Equal(t, []rune(assets.Glyph(assets.SpriteActionButton))[0], got)
}

func TestResizeRefitsCamera(t *testing.T) {
	screen := newSimScreen()
	r := NewRenderer(screen, 960, 640)
	screen.(tcell.SimulationScreen).SetSize(120, 40)
	r.Resize()
	assert.Equal(t, 120, r.Camera().ViewWidth)
	assert.Equal(t, 37, r.Camera().ViewHeight)
}
