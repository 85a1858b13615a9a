// Package scene is the single world context one player session runs in. It
// owns the entity world, the player and companion, the input controller, the
// interaction machine and the drone choreography, and steps them once per
// tick in a fixed order.
package scene

import (
	"log/slog"
	"math/rand"
	"time"

	"district9/internal/choreo"
	"district9/internal/component"
	"district9/internal/config"
	"district9/internal/ecs"
	"district9/internal/factory"
	"district9/internal/input"
	"district9/internal/interact"
	"district9/internal/system"
	"district9/internal/vmath"
)

// Scene is one running District 9 scene. It is not safe for concurrent use:
// the host must deliver input and ticks from a single goroutine.
type Scene struct {
	cfg config.Tuning
	log *slog.Logger

	world     *ecs.World
	player    ecs.EntityID
	companion ecs.EntityID
	npcs      []ecs.EntityID
	bounds    system.Bounds

	input    *input.Controller
	machine  *interact.Machine
	timeline *choreo.Timeline
	director *choreo.Director

	ticks    uint64
	elapsed  time.Duration
	stats    Stats
	tornDown bool
}

// Stats counts what happened in a scene.
type Stats struct {
	Talks      map[string]int // opened dialogues by NPC category
	Dismissals int
}

// New builds a scene from cfg. rng drives NPC placement and dialogue
// choice; pass a seeded source for reproducible runs.
func New(cfg config.Tuning, rng *rand.Rand, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	w := ecs.NewWorld()
	s := &Scene{
		cfg:    cfg,
		log:    log,
		world:  w,
		bounds: system.Bounds{Width: cfg.WorldWidth, Height: cfg.WorldHeight},
		input: input.NewController(input.Settings{
			Speed:          cfg.PlayerSpeed,
			JoystickRadius: cfg.JoystickRadius,
			JoystickSpeed:  cfg.JoystickSpeed,
			SplitX:         cfg.WorldWidth / 2,
		}),
		timeline: choreo.NewTimeline(w),
		stats:    Stats{Talks: make(map[string]int)},
	}

	launcher := &droneLauncher{cfg: cfg}
	s.machine = interact.NewMachine(cfg.InteractDistance, rng, launcher, log)
	s.director = choreo.NewDirector(w, s.timeline, s.machine, log)
	launcher.director = s.director

	s.npcs = factory.PopulateNPCs(w, cfg, rng)
	s.player = factory.NewPlayer(w, cfg.PlayerStart.X, cfg.PlayerStart.Y)
	s.companion = factory.NewCompanion(w, s.player, cfg.FollowOffset, cfg.FollowFactor)

	log.Info("scene ready", "npcs", len(s.npcs), "entities", w.Len())
	return s
}

// droneLauncher maps an NPC's category to its drone script.
type droneLauncher struct {
	cfg      config.Tuning
	director *choreo.Director
}

func (l *droneLauncher) Launch(s *interact.Session, t interact.Target) {
	switch t.Category {
	case component.CategoryDelivery:
		l.director.Launch(choreo.Delivery(l.cfg, t.Pos), s.ID)
	case component.CategoryVisit:
		l.director.Launch(choreo.Visit(l.cfg, t.Pos), s.ID)
	}
}

// Update advances the scene by one tick of dt with keys as the keyboard
// snapshot. Order: dismiss, movement, companion follow, choreography, then
// the interaction trigger.
func (s *Scene) Update(dt time.Duration, keys input.Keys) {
	if s.tornDown {
		return
	}
	s.ticks++
	s.elapsed += dt

	if keys.Dismiss && s.machine.Dismiss() {
		s.stats.Dismissals++
	}

	m := s.input.Resolve(keys)
	system.SetMotion(s.world, s.player, m.Velocity, m.Facing)
	system.Integrate(s.world, dt, s.bounds)
	system.FollowCompanions(s.world)

	s.timeline.Advance(dt)

	armed := s.input.ActionArmed()
	if keys.Action || armed {
		if sess, ok := s.machine.Trigger(s.PlayerPos(), s.targets()); ok {
			s.stats.Talks[sess.Category.String()]++
			if armed {
				s.input.ConsumeAction()
			}
		}
	}
}

func (s *Scene) targets() []interact.Target {
	near := system.NPCsWithin(s.world, s.PlayerPos(), s.cfg.InteractDistance)
	out := make([]interact.Target, 0, len(near))
	for _, n := range near {
		out = append(out, interact.Target{ID: n.ID, Name: n.NPC.Name, Category: n.NPC.Category, Pos: n.Pos})
	}
	return out
}

// PointerDown handles a new touch or click in world coordinates. While a
// dialogue is displayed any pointer press dismisses it, and that press never
// arms the action button.
func (s *Scene) PointerDown(p input.Pointer) {
	if s.tornDown {
		return
	}
	displaying := s.machine.State() == interact.StateDisplaying
	if displaying && s.machine.Dismiss() {
		s.stats.Dismissals++
	}
	s.input.PointerDown(p, !displaying)
}

// PointerMove handles a drag in world coordinates.
func (s *Scene) PointerMove(p input.Pointer) {
	if s.tornDown {
		return
	}
	s.input.PointerMove(p)
}

// PointerUp handles a touch release.
func (s *Scene) PointerUp(p input.Pointer) {
	if s.tornDown {
		return
	}
	s.input.PointerUp(p)
}

// Teardown stops every drone sequence, drops pending timers and closes any
// open dialogue. The scene ignores input afterwards. Calling it twice is safe.
func (s *Scene) Teardown() {
	if s.tornDown {
		return
	}
	s.tornDown = true
	s.director.CancelAll()
	s.timeline.Clear()
	s.machine.Reset()
	s.log.Info("scene torn down", "ticks", s.ticks, "elapsed", s.elapsed)
}

// World is the scene's entity store. Callers must treat it as read-only.
func (s *Scene) World() *ecs.World { return s.world }

// Config is the tuning the scene was built with.
func (s *Scene) Config() config.Tuning { return s.cfg }

// Player is the player entity.
func (s *Scene) Player() ecs.EntityID { return s.player }

// Companion is the follower drone entity.
func (s *Scene) Companion() ecs.EntityID { return s.companion }

// NPCs lists the residents in creation order.
func (s *Scene) NPCs() []ecs.EntityID { return s.npcs }

// PlayerPos is the player's current position.
func (s *Scene) PlayerPos() vmath.Vec2 {
	if c := s.world.Get(s.player, component.CPosition); c != nil {
		return c.(component.Position).Vec2
	}
	return vmath.Vec2{}
}

// Facing is the player's current orientation.
func (s *Scene) Facing() component.Direction { return s.input.Facing() }

// Joystick is the virtual joystick's state for drawing.
func (s *Scene) Joystick() input.JoystickState { return s.input.Joystick() }

// Button is the on-screen action button's state for drawing.
func (s *Scene) Button() input.ButtonState { return s.input.Button() }

// Interaction is the interaction machine's state.
func (s *Scene) Interaction() interact.State { return s.machine.State() }

// Session is the open dialogue session, or nil.
func (s *Scene) Session() *interact.Session { return s.machine.Session() }

// Dialogue is the text the dialogue overlay shows; empty when hidden.
func (s *Scene) Dialogue() string { return s.machine.Text() }

// Sequences are the drone sequences still flying.
func (s *Scene) Sequences() []*choreo.Sequence { return s.director.Live() }

// Airborne lists the drone and payload entities still owned by a live
// sequence.
func (s *Scene) Airborne() []ecs.EntityID {
	var out []ecs.EntityID
	for _, seq := range s.director.Live() {
		out = append(out, seq.Actors()...)
	}
	return out
}

// Nearby lists the NPCs close enough to talk to, nearest first.
func (s *Scene) Nearby() []system.Nearby {
	return system.NPCsWithin(s.world, s.PlayerPos(), s.cfg.InteractDistance)
}

// Ticks is the number of updates run so far.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Elapsed is the simulated time run so far.
func (s *Scene) Elapsed() time.Duration { return s.elapsed }

// Stats returns a copy of the scene's counters.
func (s *Scene) Stats() Stats {
	out := Stats{Talks: make(map[string]int, len(s.stats.Talks)), Dismissals: s.stats.Dismissals}
	for k, v := range s.stats.Talks {
		out.Talks[k] = v
	}
	return out
}

// TornDown reports whether Teardown has run.
func (s *Scene) TornDown() bool { return s.tornDown }
