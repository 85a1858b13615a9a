package system

import (
	"time"

	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// Bounds is the rectangle moving bodies are kept inside.
type Bounds struct {
	Width, Height float64
}

// Integrate advances every entity carrying Position and Velocity by dt,
// clamping the result to bounds.
func Integrate(w *ecs.World, dt time.Duration, bounds Bounds) {
	secs := dt.Seconds()
	for _, id := range w.Query(component.CPosition, component.CVelocity) {
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		if vel.IsZero() {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		next := pos.Add(vel.Scale(secs))
		next.X = vmath.Clamp(next.X, 0, bounds.Width)
		next.Y = vmath.Clamp(next.Y, 0, bounds.Height)
		w.Add(id, component.Position{Vec2: next})
	}
}

// SetMotion writes the velocity and facing for id and swaps its sprite to
// the matching orientation asset.
func SetMotion(w *ecs.World, id ecs.EntityID, vel vmath.Vec2, dir component.Direction) {
	w.Add(id, component.Velocity{Vec2: vel})
	w.Add(id, component.Facing{Dir: dir})
	if c := w.Get(id, component.CSprite); c != nil {
		s := c.(component.Sprite)
		s.Name = dir.HeroSprite()
		w.Add(id, s)
	}
}
