package component

import "district9/internal/ecs"

const CCompanion ecs.ComponentType = 6

// Companion marks the drone that trails the player. It reads the leader's
// position each tick and never writes to it.
type Companion struct {
	Leader ecs.EntityID
	Offset float64 // hover height above the leader
	Factor float64 // fraction of the remaining gap closed per tick
}

func (Companion) Type() ecs.ComponentType { return CCompanion }
