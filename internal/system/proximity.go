package system

import (
	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// Nearby is an NPC within interaction range of a point.
type Nearby struct {
	ID       ecs.EntityID
	NPC      component.NPC
	Pos      vmath.Vec2
	Distance float64
}

// NPCsWithin returns every NPC strictly closer than radius to p, nearest
// first. Equal distances keep creation order.
func NPCsWithin(w *ecs.World, p vmath.Vec2, radius float64) []Nearby {
	var out []Nearby
	for _, id := range w.Query(component.CNPC, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		d := vmath.Distance(p, pos.Vec2)
		if d >= radius {
			continue
		}
		out = append(out, Nearby{
			ID:       id,
			NPC:      w.Get(id, component.CNPC).(component.NPC),
			Pos:      pos.Vec2,
			Distance: d,
		})
	}
	// Insertion sort: the candidate list is tiny and the input is ID-ordered,
	// so stability gives the lowest ID on ties.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Distance < out[j-1].Distance; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
