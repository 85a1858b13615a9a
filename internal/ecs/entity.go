package ecs

// EntityID uniquely identifies an entity in a scene.
type EntityID uint64

// NilEntity is the zero value; no live entity ever has this ID.
const NilEntity EntityID = 0

// ComponentType is the small integer key a component is stored under.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
