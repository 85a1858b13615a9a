package choreo

import (
	"district9/assets"
	"district9/internal/config"
	"district9/internal/ecs"
	"district9/internal/factory"
	"district9/internal/vmath"
)

// Actor roles used by the drone scripts.
const (
	RoleDrone   = "drone"
	RolePayload = "payload"
)

// Delivery is the five-stage food drop for the NPC at npc: drone and crate
// enter from the left at altitude, fly over the NPC, descend, hold while the
// delivery is confirmed, then the crate is left behind and the drone exits
// right.
func Delivery(cfg config.Tuning, npc vmath.Vec2) Script {
	t := cfg.Delivery
	ease := vmath.EaseByName(cfg.Ease)
	cruise := npc.Y + t.DroneHeight
	return Script{
		Name: "delivery",
		Stages: []Stage{
			{
				Name: "spawn",
				Enter: []Action{
					Spawn(RoleDrone, func(w *ecs.World) ecs.EntityID {
						return factory.NewDrone(w, cfg.OffscreenLeft, cruise)
					}),
					Spawn(RolePayload, func(w *ecs.World) ecs.EntityID {
						return factory.NewPayload(w, cfg.OffscreenLeft, npc.Y+t.CargoHeight)
					}),
				},
			},
			{
				Name: "fly-in",
				Move: &Move{Actors: []string{RoleDrone, RolePayload}, To: ToX(npc.X), Duration: t.FlyIn, Ease: ease},
			},
			{
				Name: "descend",
				Move: &Move{Actors: []string{RoleDrone, RolePayload}, To: ToY(npc.Y + t.LandedHeight), Duration: t.Descend, Ease: ease},
			},
			{
				Name:  "confirm",
				Enter: []Action{Say(assets.DeliveryConfirmed)},
				Hold:  t.Hold,
			},
			{
				Name:  "depart",
				Enter: []Action{Destroy(RolePayload)},
				Move:  &Move{Actors: []string{RoleDrone}, To: ToXY(cfg.OffscreenRight, cruise), Duration: t.Depart, Ease: ease},
				Exit:  []Action{Destroy(RoleDrone)},
			},
		},
	}
}

// Visit is the patrol drone stopping by the NPC at npc: it enters from the
// right, hovers above the NPC for the hold, and exits left.
func Visit(cfg config.Tuning, npc vmath.Vec2) Script {
	t := cfg.Visit
	ease := vmath.EaseByName(cfg.Ease)
	return Script{
		Name: "visit",
		Stages: []Stage{
			{
				Name: "spawn",
				Enter: []Action{
					Spawn(RoleDrone, func(w *ecs.World) ecs.EntityID {
						return factory.NewDrone(w, cfg.OffscreenRight, npc.Y+t.DroneHeight)
					}),
				},
			},
			{
				Name: "fly-in",
				Move: &Move{Actors: []string{RoleDrone}, To: ToX(npc.X), Duration: t.FlyIn, Ease: ease},
			},
			{
				Name: "hover",
				Hold: t.Hold,
			},
			{
				Name: "depart",
				Move: &Move{Actors: []string{RoleDrone}, To: ToX(cfg.OffscreenLeft), Duration: t.Depart, Ease: ease},
				Exit: []Action{Destroy(RoleDrone)},
			},
		},
	}
}
