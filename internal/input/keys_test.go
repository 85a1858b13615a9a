package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"district9/internal/component"
)

func TestKeyTrackerEdges(t *testing.T) {
	tr := NewKeyTracker(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	assert.True(t, tr.Press(KeyAction, t0), "first press is an edge")
	assert.False(t, tr.Press(KeyAction, t0.Add(40*time.Millisecond)), "auto-repeat is not an edge")

	k := tr.Snapshot(t0.Add(50 * time.Millisecond))
	assert.True(t, k.Action)
	k = tr.Snapshot(t0.Add(60 * time.Millisecond))
	assert.False(t, k.Action, "edges are reported once")

	assert.True(t, tr.Press(KeyAction, t0.Add(time.Second)), "press after the hold window is a new edge")
}

func TestKeyTrackerHeldWindow(t *testing.T) {
	tr := NewKeyTracker(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	tr.Press(KeyLeft, t0)

	assert.True(t, tr.Snapshot(t0.Add(100*time.Millisecond)).Left)
	tr.Press(KeyLeft, t0.Add(200*time.Millisecond))
	assert.True(t, tr.Snapshot(t0.Add(400*time.Millisecond)).Left, "repeat extends the hold")
	assert.False(t, tr.Snapshot(t0.Add(500*time.Millisecond)).Left)
}

func TestKeyTrackerIgnoresUnknownKey(t *testing.T) {
	tr := NewKeyTracker(time.Second)
	assert.False(t, tr.Press(Key(200), time.Unix(1, 0)))
}

func TestKeyTrackerNewestDirectionWins(t *testing.T) {
	tr := NewKeyTracker(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	tr.Press(KeyLeft, t0)
	tr.Press(KeyRight, t0.Add(100*time.Millisecond))

	k := tr.Snapshot(t0.Add(150 * time.Millisecond))
	assert.False(t, k.Left, "an older direction is released")
	assert.True(t, k.Right)

	m := NewController(Settings{Speed: 140, JoystickRadius: 60, JoystickSpeed: 150, SplitX: 480}).Resolve(k)
	assert.Equal(t, 140.0, m.Velocity.X)
	assert.Equal(t, 0.0, m.Velocity.Y)
	assert.Equal(t, component.FacingRight, m.Facing)
}

func TestKeyTrackerActionKeepsDirectionHeld(t *testing.T) {
	tr := NewKeyTracker(250 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	tr.Press(KeyUp, t0)
	tr.Press(KeyAction, t0.Add(50*time.Millisecond))

	k := tr.Snapshot(t0.Add(100 * time.Millisecond))
	assert.True(t, k.Up)
	assert.True(t, k.Action)
}
