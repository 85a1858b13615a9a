package component

import "district9/internal/ecs"

const CSprite ecs.ComponentType = 4

// Sprite names the image resource an entity is drawn with.
// Higher Order is drawn on top.
type Sprite struct {
	Name  string
	Scale float64
	Alpha float64
	Order int
}

func (Sprite) Type() ecs.ComponentType { return CSprite }
