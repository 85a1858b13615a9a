package game

import (
	"github.com/gdamore/tcell/v2"

	"district9/internal/input"
)

// keyFor maps a tcell key event to a scene key.
func keyFor(ev *tcell.EventKey) (input.Key, bool) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyEnter, tcell.KeyEscape:
		return input.KeyDismiss, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return input.KeyUp, true
	case 's', 'S', 'j', 'J':
		return input.KeyDown, true
	case 'd', 'D', 'l', 'L':
		return input.KeyRight, true
	case 'a', 'A', 'h', 'H':
		return input.KeyLeft, true
	case ' ', 'e', 'E':
		return input.KeyAction, true
	}
	return 0, false
}

// isQuit reports whether ev asks to leave the scene.
func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		return ev.Rune() == 'c' || ev.Rune() == 'C'
	}
	return ev.Rune() == 'q' || ev.Rune() == 'Q'
}
