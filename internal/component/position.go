package component

import (
	"district9/internal/ecs"
	"district9/internal/vmath"
)

const CPosition ecs.ComponentType = 1

// Position is an entity's location in world units (origin top-left, y down).
type Position struct {
	vmath.Vec2
}

func (Position) Type() ecs.ComponentType { return CPosition }

// At is shorthand for Position{vmath.V(x, y)}.
func At(x, y float64) Position { return Position{vmath.V(x, y)} }
