package factory

import (
	"fmt"
	"math/rand"

	"district9/assets"
	"district9/internal/component"
	"district9/internal/config"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// Render orders, back to front.
const (
	OrderNPC       = 5
	OrderPlayer    = 10
	OrderCompanion = 12
	OrderPayload   = 14
	OrderDrone     = 15
)

// NewPlayer creates the player entity at (x, y), facing front.
func NewPlayer(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Velocity{})
	w.Add(id, component.Facing{Dir: component.FacingFront})
	w.Add(id, component.Sprite{Name: assets.SpriteHeroFront, Scale: 0.8, Alpha: 1, Order: OrderPlayer})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewCompanion creates the hovering drone that follows leader.
// It starts at its rest point offset above the leader.
func NewCompanion(w *ecs.World, leader ecs.EntityID, offset, factor float64) ecs.EntityID {
	start := vmath.Vec2{}
	if p := w.Get(leader, component.CPosition); p != nil {
		start = p.(component.Position).Vec2
	}
	id := w.CreateEntity()
	w.Add(id, component.At(start.X, start.Y-offset))
	w.Add(id, component.Sprite{Name: assets.SpriteDrone, Scale: 0.4, Alpha: 1, Order: OrderCompanion})
	w.Add(id, component.Companion{Leader: leader, Offset: offset, Factor: factor})
	return id
}

// NewNPC creates one resident. index is its position in creation order and
// picks the portrait; category is fixed for the entity's lifetime.
func NewNPC(w *ecs.World, name string, category component.Category, index, sprites int, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Sprite{Name: assets.NPCSprite(index, sprites), Scale: 1, Alpha: 1, Order: OrderNPC})
	w.Add(id, component.NPC{Name: name, Category: category, Index: index})
	return id
}

// PopulateNPCs places every resident described by cfg. Categories follow the
// grouping order: delivery spots, then visit spots, then ambient residents
// scattered uniformly in the ambient region.
func PopulateNPCs(w *ecs.World, cfg config.Tuning, rng *rand.Rand) []ecs.EntityID {
	var ids []ecs.EntityID
	index := 0
	place := func(cat component.Category, n int, x, y float64) {
		name := fmt.Sprintf("%s#%d", cat, n)
		ids = append(ids, NewNPC(w, name, cat, index, cfg.NPCSprites, x, y))
		index++
	}
	for i, p := range cfg.DeliverySpots {
		place(component.CategoryDelivery, i+1, p.X, p.Y)
	}
	for i, p := range cfg.VisitSpots {
		place(component.CategoryVisit, i+1, p.X, p.Y)
	}
	r := cfg.AmbientRegion
	for i := range cfg.AmbientCount {
		x := between(rng, r.MinX, r.MaxX)
		y := between(rng, r.MinY, r.MaxY)
		place(component.CategoryAmbient, i+1, x, y)
	}
	return ids
}

// between picks an integer coordinate uniformly in [lo, hi].
func between(rng *rand.Rand, lo, hi float64) float64 {
	span := int(hi) - int(lo)
	if span <= 0 {
		return lo
	}
	return float64(int(lo) + rng.Intn(span+1))
}

// NewDrone creates a delivery/visit drone owned by a choreography sequence.
func NewDrone(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Sprite{Name: assets.SpriteDrone, Scale: 0.3, Alpha: 1, Order: OrderDrone})
	w.Add(id, component.TagEphemeral{Role: "drone"})
	return id
}

// NewPayload creates the fruit crate a delivery drone carries.
func NewPayload(w *ecs.World, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.At(x, y))
	w.Add(id, component.Sprite{Name: assets.SpriteFruits, Scale: 0.8, Alpha: 1, Order: OrderPayload})
	w.Add(id, component.TagEphemeral{Role: "payload"})
	return id
}
