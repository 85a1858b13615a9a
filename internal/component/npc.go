package component

import "district9/internal/ecs"

const CNPC ecs.ComponentType = 5

// Category decides which dialogue pool an NPC speaks from and which drone
// sequence, if any, it summons. The zero value is not a valid category.
type Category uint8

const (
	CategoryDelivery Category = iota + 1
	CategoryVisit
	CategoryAmbient
)

func (c Category) String() string {
	switch c {
	case CategoryDelivery:
		return "Delivery"
	case CategoryVisit:
		return "Visit"
	case CategoryAmbient:
		return "Ambient"
	}
	return "Unknown"
}

// Valid reports whether c is one of the three categories.
func (c Category) Valid() bool {
	return c >= CategoryDelivery && c <= CategoryAmbient
}

// NPC is a stationary resident. The component is written once at creation.
type NPC struct {
	Name     string // e.g. "Delivery#1"
	Category Category
	Index    int // creation index across all NPCs
}

func (NPC) Type() ecs.ComponentType { return CNPC }
