package choreo

import (
	"log/slog"
	"maps"
	"slices"

	"district9/internal/ecs"
)

// Narrator receives text a sequence wants shown. owner is the value given to
// Launch, typically the interaction session that summoned the drone.
type Narrator interface {
	Narrate(owner uint64, text string)
}

// Director launches sequences and tracks the live ones so a scene teardown
// can stop them all.
type Director struct {
	world    *ecs.World
	tl       *Timeline
	narrator Narrator
	log      *slog.Logger

	nextID uint64
	live   map[uint64]*Sequence
}

// NewDirector creates a director scheduling on tl. narrator may be nil.
func NewDirector(w *ecs.World, tl *Timeline, narrator Narrator, log *slog.Logger) *Director {
	if log == nil {
		log = slog.Default()
	}
	return &Director{
		world:    w,
		tl:       tl,
		narrator: narrator,
		log:      log,
		live:     make(map[uint64]*Sequence),
	}
}

// Launch starts script immediately: its leading instantaneous stages run
// before Launch returns, and the first timed stage is scheduled.
func (d *Director) Launch(script Script, owner uint64) *Sequence {
	d.nextID++
	s := &Sequence{
		id:     d.nextID,
		script: script,
		world:  d.world,
		tl:     d.tl,
		actors: make(map[string]ecs.EntityID),
	}
	if d.narrator != nil {
		s.narrate = func(text string) { d.narrator.Narrate(owner, text) }
	}
	s.onEnd = d.ended
	d.live[s.id] = s
	d.log.Debug("sequence launched", "seq", s.id, "script", script.Name, "owner", owner)
	s.enter(0)
	return s
}

func (d *Director) ended(s *Sequence) {
	delete(d.live, s.id)
	if s.cancelled {
		d.log.Debug("sequence cancelled", "seq", s.id, "script", s.Name(), "stage", s.stage)
		return
	}
	d.log.Debug("sequence finished", "seq", s.id, "script", s.Name())
}

// Active is the number of sequences still running.
func (d *Director) Active() int { return len(d.live) }

// CancelAll stops every live sequence and destroys their entities.
func (d *Director) CancelAll() {
	for _, s := range d.Live() {
		s.Cancel()
	}
}

// Live returns the running sequences in launch order.
func (d *Director) Live() []*Sequence {
	out := make([]*Sequence, 0, len(d.live))
	for _, id := range slices.Sorted(maps.Keys(d.live)) {
		out = append(out, d.live[id])
	}
	return out
}
