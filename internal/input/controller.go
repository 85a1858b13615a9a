// Package input merges the two ways of steering the player, held direction
// keys and the on-screen virtual joystick, into one velocity and facing per
// tick. It also owns the on-screen action button's one-shot flag.
package input

import (
	"math"

	"district9/internal/component"
	"district9/internal/vmath"
)

// Keys is one tick's keyboard snapshot. Directions are held state; Action
// and Dismiss are rising edges.
type Keys struct {
	Left, Right, Up, Down bool
	Action                bool
	Dismiss               bool
}

// Pointer is a pointer or touch event in world coordinates. ID is stable for
// the lifetime of one touch.
type Pointer struct {
	ID   int
	X, Y float64
}

func (p Pointer) pos() vmath.Vec2 { return vmath.V(p.X, p.Y) }

// Settings are the controller's constants.
type Settings struct {
	Speed          float64 // keyboard speed
	JoystickRadius float64
	JoystickSpeed  float64
	SplitX         float64 // pointers left of this drive the joystick, right of it press the action button
}

// Motion is the controller's output for one tick.
type Motion struct {
	Velocity vmath.Vec2
	Facing   component.Direction
}

// JoystickState is the virtual joystick while a touch holds it.
type JoystickState struct {
	Active  bool
	Anchor  vmath.Vec2
	Pointer int
	Offset  vmath.Vec2 // displacement from Anchor, clamped to the radius
}

// Thumb is where the joystick knob is drawn.
func (j JoystickState) Thumb() vmath.Vec2 { return j.Anchor.Add(j.Offset) }

// ButtonState is the on-screen action button.
type ButtonState struct {
	Visible bool
	Pos     vmath.Vec2
	Pointer int
	Armed   bool
}

// Controller is the dual input controller. It is not safe for concurrent use;
// the host calls it from the tick goroutine only.
type Controller struct {
	cfg    Settings
	facing component.Direction
	joy    JoystickState
	button ButtonState
}

// NewController creates a controller facing front with both paths idle.
func NewController(cfg Settings) *Controller {
	return &Controller{cfg: cfg, facing: component.FacingFront}
}

// Facing is the last resolved orientation.
func (c *Controller) Facing() component.Direction { return c.facing }

// Joystick returns the current joystick state.
func (c *Controller) Joystick() JoystickState { return c.joy }

// Button returns the current action button state.
func (c *Controller) Button() ButtonState { return c.button }

// PointerDown routes a new touch. A touch on the left side claims the
// joystick if no other touch holds it. A touch on the right side shows the
// action button and, when armAction is set, raises the action flag.
func (c *Controller) PointerDown(p Pointer, armAction bool) {
	switch {
	case p.X < c.cfg.SplitX:
		if c.joy.Active {
			return
		}
		c.joy = JoystickState{Active: true, Anchor: p.pos(), Pointer: p.ID}
	case p.X > c.cfg.SplitX:
		c.button = ButtonState{Visible: true, Pos: p.pos(), Pointer: p.ID, Armed: armAction}
	}
}

// PointerMove updates the joystick displacement. Moves from any touch other
// than the one holding the joystick are ignored.
func (c *Controller) PointerMove(p Pointer) {
	if !c.joy.Active || p.ID != c.joy.Pointer {
		return
	}
	c.joy.Offset = vmath.ClampMagnitude(p.pos().Sub(c.joy.Anchor), c.cfg.JoystickRadius)
}

// PointerUp releases whatever the touch was holding.
func (c *Controller) PointerUp(p Pointer) {
	if c.joy.Active && p.ID == c.joy.Pointer {
		c.joy = JoystickState{}
	}
	if c.button.Visible && p.ID == c.button.Pointer {
		c.button = ButtonState{}
	}
}

// ActionArmed reports whether the on-screen button's flag is raised.
func (c *Controller) ActionArmed() bool { return c.button.Armed }

// ConsumeAction lowers the action flag.
func (c *Controller) ConsumeAction() { c.button.Armed = false }

// Resolve produces this tick's velocity and facing. Keyboard input takes
// precedence over the joystick; with both idle the velocity is zero and the
// facing is kept.
func (c *Controller) Resolve(k Keys) Motion {
	if v, dir, ok := c.keyboard(k); ok {
		c.facing = dir
		return Motion{Velocity: v, Facing: dir}
	}
	if c.joy.Active {
		n := c.joy.Offset.Scale(1 / c.cfg.JoystickRadius)
		if dir, ok := facingOf(n); ok {
			c.facing = dir
		}
		return Motion{Velocity: n.Scale(c.cfg.JoystickSpeed), Facing: c.facing}
	}
	return Motion{Facing: c.facing}
}

// keyboard applies the fixed priority left, right, up, down. The first held
// key decides the whole tick, so diagonals collapse onto one axis.
func (c *Controller) keyboard(k Keys) (vmath.Vec2, component.Direction, bool) {
	s := c.cfg.Speed
	switch {
	case k.Left:
		return vmath.V(-s, 0), component.FacingLeft, true
	case k.Right:
		return vmath.V(s, 0), component.FacingRight, true
	case k.Up:
		return vmath.V(0, -s), component.FacingBack, true
	case k.Down:
		return vmath.V(0, s), component.FacingFront, true
	}
	return vmath.Vec2{}, 0, false
}

// facingOf picks the orientation from a normalized joystick vector: the
// dominant axis wins, vertical on ties. A zero vector has no facing.
func facingOf(n vmath.Vec2) (component.Direction, bool) {
	if n.IsZero() {
		return 0, false
	}
	if math.Abs(n.X) > math.Abs(n.Y) {
		if n.X > 0 {
			return component.FacingRight, true
		}
		return component.FacingLeft, true
	}
	if n.Y > 0 {
		return component.FacingFront, true
	}
	return component.FacingBack, true
}
