// Package render draws a scene onto a tcell screen: the district, its
// residents and drones, the touch controls and the dialogue overlay.
package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"district9/assets"
	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/scene"
	"district9/internal/vmath"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 3

// Renderer draws scenes onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for a world of worldW x worldH.
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(worldW, worldH, w, h-hudRows),
	}
}

// Resize refits the camera after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h-hudRows)
}

// Camera is the world-to-screen mapping in use.
func (r *Renderer) Camera() *Camera { return r.camera }

// InView reports whether cell (x, y) is inside the world viewport rather
// than the HUD.
func (r *Renderer) InView(x, y int) bool {
	return x >= 0 && x < r.camera.ViewWidth && y >= 0 && y < r.camera.ViewHeight
}

// Draw renders a full frame and shows it.
func (r *Renderer) Draw(s *scene.Scene) {
	r.DrawFrame(s)
	r.DrawHUD(s)
}

// DrawFrame renders the streets, entities, touch controls and dialogue.
func (r *Renderer) DrawFrame(s *scene.Scene) {
	r.screen.Clear()
	r.drawStreets()
	r.drawEntities(s.World())
	r.drawControls(s)
	if text := s.Dialogue(); text != "" {
		speaker := ""
		if sess := s.Session(); sess != nil {
			speaker = sess.NPCName
		}
		r.drawDialogue(speaker, text)
	}
}

// drawStreets fills the viewport with a faint grid standing in for the
// district map.
func (r *Renderer) drawStreets() {
	for y := 0; y < r.camera.ViewHeight; y++ {
		for x := 0; x < r.camera.ViewWidth; x++ {
			switch {
			case x%streetEveryX == 0 && y%streetEveryY == 0:
				r.screen.SetContent(x, y, '+', nil, styleStreet)
			case y%streetEveryY == 0:
				r.screen.SetContent(x, y, '·', nil, styleStreet)
			}
		}
	}
}

// drawable holds sorting info for entity rendering.
type drawable struct {
	id     ecs.EntityID
	pos    vmath.Vec2
	sprite component.Sprite
}

// drawEntities renders every positioned sprite, lowest Order first so higher
// layers end up on top. Equal orders draw in creation order.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CSprite, component.CPosition)
	items := make([]drawable, 0, len(ids))
	for _, id := range ids {
		items = append(items, drawable{
			id:     id,
			pos:    w.Get(id, component.CPosition).(component.Position).Vec2,
			sprite: w.Get(id, component.CSprite).(component.Sprite),
		})
	}
	slices.SortStableFunc(items, func(a, b drawable) int {
		return cmp.Compare(a.sprite.Order, b.sprite.Order)
	})

	for _, e := range items {
		if e.sprite.Alpha <= 0 {
			continue
		}
		sx, sy, ok := r.camera.WorldToScreen(e.pos)
		if !ok {
			continue
		}
		style := styleBase
		if e.sprite.Alpha < 1 {
			style = styleFaded
		}
		r.putGlyph(sx, sy, assets.Glyph(e.sprite.Name), style)
	}
}

// drawControls renders the virtual joystick and the action button while a
// touch holds them.
func (r *Renderer) drawControls(s *scene.Scene) {
	if j := s.Joystick(); j.Active {
		radius := s.Config().JoystickRadius
		for i := range 16 {
			a := float64(i) * math.Pi / 8
			p := j.Anchor.Add(vmath.V(math.Cos(a), math.Sin(a)).Scale(radius))
			if sx, sy, ok := r.camera.WorldToScreen(p); ok {
				r.screen.SetContent(sx, sy, '·', nil, styleControl)
			}
		}
		if sx, sy, ok := r.camera.WorldToScreen(j.Thumb()); ok {
			r.putGlyph(sx, sy, assets.Glyph(assets.SpriteJoystickThumb), styleThumb)
		}
	}
	if b := s.Button(); b.Visible {
		style := styleControl
		if b.Armed {
			style = styleThumb
		}
		if sx, sy, ok := r.camera.WorldToScreen(b.Pos); ok {
			r.putGlyph(sx, sy, assets.Glyph(assets.SpriteActionButton), style)
		}
	}
}

// drawDialogue renders the dialogue overlay across the bottom of the view.
func (r *Renderer) drawDialogue(speaker, text string) {
	boxW := min(r.camera.ViewWidth-2, 72)
	if boxW < 8 {
		return
	}
	lines := wrapText(text, boxW-4)
	boxH := len(lines) + 2
	x0 := (r.camera.ViewWidth - boxW) / 2
	y0 := max(r.camera.ViewHeight-boxH-1, 0)

	for row := y0; row < y0+boxH; row++ {
		for col := x0; col < x0+boxW; col++ {
			r.screen.SetContent(col, row, ' ', nil, styleBase)
		}
	}
	for col := x0 + 1; col < x0+boxW-1; col++ {
		r.screen.SetContent(col, y0, '─', nil, styleBorder)
		r.screen.SetContent(col, y0+boxH-1, '─', nil, styleBorder)
	}
	for row := y0 + 1; row < y0+boxH-1; row++ {
		r.screen.SetContent(x0, row, '│', nil, styleBorder)
		r.screen.SetContent(x0+boxW-1, row, '│', nil, styleBorder)
	}
	r.screen.SetContent(x0, y0, '┌', nil, styleBorder)
	r.screen.SetContent(x0+boxW-1, y0, '┐', nil, styleBorder)
	r.screen.SetContent(x0, y0+boxH-1, '└', nil, styleBorder)
	r.screen.SetContent(x0+boxW-1, y0+boxH-1, '┘', nil, styleBorder)

	if speaker != "" {
		r.drawText(x0+2, y0, runewidth.Truncate(" "+speaker+" ", boxW-4, "…"), styleSpeaker)
	}
	for i, line := range lines {
		r.drawText(x0+2, y0+1+i, line, styleDialogue)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y). Wide glyphs on the last column are pulled one cell left.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.StringWidth(glyph) == 2 && x == r.camera.ViewWidth-1 && x > 0 {
		x--
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
}
