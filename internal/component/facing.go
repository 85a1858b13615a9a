package component

import "district9/internal/ecs"

const CFacing ecs.ComponentType = 3

// Direction is one of the four orientations the hero sprite can show.
type Direction uint8

const (
	FacingFront Direction = iota // toward the camera (down the screen)
	FacingBack
	FacingLeft
	FacingRight
)

func (d Direction) String() string {
	switch d {
	case FacingBack:
		return "back"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "front"
	}
}

// HeroSprite returns the orientation asset for d.
func (d Direction) HeroSprite() string {
	return "hero_" + d.String()
}

type Facing struct {
	Dir Direction
}

func (Facing) Type() ecs.ComponentType { return CFacing }
