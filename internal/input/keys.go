package input

import "time"

// Key is a logical key the scene reacts to.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyAction
	KeyDismiss
	numKeys
)

func (k Key) direction() bool { return k <= KeyDown }

// KeyTracker turns a stream of key-press events into held state and rising
// edges. Terminals report presses and auto-repeats but never releases, so a
// key counts as held for a window after its most recent event, and an event
// is an edge only when the key was not already held.
type KeyTracker struct {
	hold  time.Duration
	last  [numKeys]time.Time
	edges [numKeys]bool
}

// NewKeyTracker creates a tracker with the given hold window.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	return &KeyTracker{hold: hold}
}

// Press records a key event at now and reports whether it was a rising edge.
// A direction press releases every other direction: terminals only repeat
// the latest key, so the newest direction is the one being held.
func (t *KeyTracker) Press(k Key, now time.Time) bool {
	if k >= numKeys {
		return false
	}
	if k.direction() {
		for d := KeyLeft; d <= KeyDown; d++ {
			if d != k {
				t.last[d] = time.Time{}
			}
		}
	}
	edge := !t.held(k, now)
	t.last[k] = now
	if edge {
		t.edges[k] = true
	}
	return edge
}

func (t *KeyTracker) held(k Key, now time.Time) bool {
	last := t.last[k]
	return !last.IsZero() && now.Sub(last) < t.hold
}

// Snapshot returns the held directions at now and the Action/Dismiss edges
// seen since the previous snapshot, then clears those edges.
func (t *KeyTracker) Snapshot(now time.Time) Keys {
	k := Keys{
		Left:    t.held(KeyLeft, now),
		Right:   t.held(KeyRight, now),
		Up:      t.held(KeyUp, now),
		Down:    t.held(KeyDown, now),
		Action:  t.edges[KeyAction],
		Dismiss: t.edges[KeyDismiss],
	}
	t.edges = [numKeys]bool{}
	return k
}
