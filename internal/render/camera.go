package render

import (
	"math"

	"district9/internal/vmath"
)

// Camera maps the fixed-size world onto the terminal viewport. The whole
// world is always in view; it is scaled to fit rather than scrolled.
type Camera struct {
	WorldWidth  float64
	WorldHeight float64
	ViewWidth   int // in terminal columns
	ViewHeight  int // in terminal rows
}

// NewCamera creates a camera showing a worldW x worldH world in a viewW x
// viewH cell viewport.
func NewCamera(worldW, worldH float64, viewW, viewH int) *Camera {
	c := &Camera{WorldWidth: worldW, WorldHeight: worldH}
	c.Resize(viewW, viewH)
	return c
}

// Resize changes the viewport. Sizes below one cell are raised to one.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth = max(viewW, 1)
	c.ViewHeight = max(viewH, 1)
}

// WorldToScreen converts a world position to a cell. visible is false for
// positions outside the world, such as drones waiting off-screen.
func (c *Camera) WorldToScreen(p vmath.Vec2) (sx, sy int, visible bool) {
	if p.X < 0 || p.X > c.WorldWidth || p.Y < 0 || p.Y > c.WorldHeight {
		return 0, 0, false
	}
	sx = min(int(math.Floor(p.X/c.WorldWidth*float64(c.ViewWidth))), c.ViewWidth-1)
	sy = min(int(math.Floor(p.Y/c.WorldHeight*float64(c.ViewHeight))), c.ViewHeight-1)
	return sx, sy, true
}

// ScreenToWorld converts a cell to the world position at its center.
func (c *Camera) ScreenToWorld(sx, sy int) vmath.Vec2 {
	return vmath.V(
		(float64(sx)+0.5)*c.WorldWidth/float64(c.ViewWidth),
		(float64(sy)+0.5)*c.WorldHeight/float64(c.ViewHeight),
	)
}
