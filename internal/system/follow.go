package system

import (
	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// FollowTarget is the rest point for a companion: directly above its leader.
func FollowTarget(leader vmath.Vec2, offset float64) vmath.Vec2 {
	return vmath.V(leader.X, leader.Y-offset)
}

// FollowCompanions moves every companion a fixed fraction of the way toward
// its rest point. It is a per-tick smoothing filter with no velocity state.
func FollowCompanions(w *ecs.World) {
	for _, id := range w.Query(component.CCompanion, component.CPosition) {
		comp := w.Get(id, component.CCompanion).(component.Companion)
		lp := w.Get(comp.Leader, component.CPosition)
		if lp == nil {
			continue
		}
		target := FollowTarget(lp.(component.Position).Vec2, comp.Offset)
		pos := w.Get(id, component.CPosition).(component.Position)
		w.Add(id, component.Position{Vec2: vmath.LerpVec(pos.Vec2, target, comp.Factor)})
	}
}
