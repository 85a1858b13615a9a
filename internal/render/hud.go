package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"district9/internal/interact"
	"district9/internal/scene"
)

const idleHint = "Arrows/WASD move · Space/E talk · drag left half: joystick · Ctrl+C quit"

// DrawHUD renders the status and hint lines below the view and shows the
// frame.
func (r *Renderer) DrawHUD(s *scene.Scene) {
	hudY := r.camera.ViewHeight
	r.drawHLine(hudY)

	pos := s.PlayerPos()
	status := fmt.Sprintf("District 9  (%3.0f, %3.0f)  facing %s  airborne: %d",
		pos.X, pos.Y, s.Facing(), len(s.Airborne()))
	r.drawText(0, hudY+1, status, styleStatus)
	r.drawText(0, hudY+2, Hint(s), styleHint)

	r.screen.Show()
}

// Hint is the one-line help for the scene's current state.
func Hint(s *scene.Scene) string {
	if s.Interaction() == interact.StateDisplaying {
		return "Enter/Esc or tap: close"
	}
	if near := s.Nearby(); len(near) > 0 {
		return "Space/E: talk to " + near[0].NPC.Name
	}
	return idleHint
}

func (r *Renderer) drawHLine(y int) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, styleSeparator)
	}
}

// drawText writes text from column x, advancing by each rune's display
// width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

// wrapText breaks text into lines no wider than width display cells,
// splitting on spaces. Words wider than a line are broken across lines.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0
	flush := func() {
		if lineW > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
	}
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		switch {
		case lineW == 0:
		case lineW+1+ww <= width:
			line.WriteByte(' ')
			lineW++
		default:
			flush()
		}
		line.WriteString(word)
		lineW += ww
	}
	flush()
	return lines
}
