package component

import (
	"district9/internal/ecs"
	"district9/internal/vmath"
)

const CVelocity ecs.ComponentType = 2

// Velocity is in world units per second.
type Velocity struct {
	vmath.Vec2
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }
