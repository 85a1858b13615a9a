package choreo

import (
	"time"

	"district9/internal/ecs"
	"district9/internal/vmath"
)

// Action is an instantaneous step run when a stage starts or completes.
type Action func(*Sequence)

// Move is a stage's motion, addressed by actor role rather than entity ID.
type Move struct {
	Actors   []string
	To       Dest
	Duration time.Duration
	Ease     vmath.Ease
}

// Stage is one step of a script. Enter actions run first; then the stage
// waits for its Move to finish, or for Hold to elapse, or completes at once
// when it has neither. Exit actions run on completion, before the next stage
// starts.
type Stage struct {
	Name  string
	Enter []Action
	Move  *Move
	Hold  time.Duration
	Exit  []Action
}

// Script is an ordered list of stages.
type Script struct {
	Name   string
	Stages []Stage
}

// Duration is the scripted time of all moves and holds.
func (s Script) Duration() time.Duration {
	var d time.Duration
	for _, st := range s.Stages {
		switch {
		case st.Move != nil:
			d += st.Move.Duration
		case st.Hold > 0:
			d += st.Hold
		}
	}
	return d
}

// Spawn creates an entity and binds it to role.
func Spawn(role string, create func(*ecs.World) ecs.EntityID) Action {
	return func(s *Sequence) {
		s.bind(role, create(s.world))
	}
}

// Destroy removes the entity bound to role.
func Destroy(role string) Action {
	return func(s *Sequence) {
		if id, ok := s.actors[role]; ok {
			s.world.DestroyEntity(id)
			delete(s.actors, role)
		}
	}
}

// Say passes text to the sequence's narrator.
func Say(text string) Action {
	return func(s *Sequence) {
		if s.narrate != nil {
			s.narrate(text)
		}
	}
}

// Sequence drives one script. It advances a stage index on each completion
// signal from the timeline and owns every entity it spawned.
type Sequence struct {
	id      uint64
	script  Script
	world   *ecs.World
	tl      *Timeline
	narrate func(string)

	stage     int
	completed []string
	actors    map[string]ecs.EntityID
	roles     []string
	pending   Handle
	finished  bool
	cancelled bool
	onEnd     func(*Sequence)
}

// ID identifies the sequence within its director.
func (s *Sequence) ID() uint64 { return s.id }

// Name is the script name.
func (s *Sequence) Name() string { return s.script.Name }

// Stage is the index of the running stage; len(stages) once finished.
func (s *Sequence) Stage() int { return s.stage }

// Completed lists the names of the stages that have finished, in order.
func (s *Sequence) Completed() []string { return s.completed }

// Done reports whether the sequence has finished or been cancelled.
func (s *Sequence) Done() bool { return s.finished }

// Cancelled reports whether the sequence was stopped before its last stage.
func (s *Sequence) Cancelled() bool { return s.cancelled }

// Actor returns the live entity bound to role.
func (s *Sequence) Actor(role string) (ecs.EntityID, bool) {
	id, ok := s.actors[role]
	return id, ok
}

// Actors returns the live entities the sequence owns, in spawn order.
func (s *Sequence) Actors() []ecs.EntityID {
	var out []ecs.EntityID
	for _, r := range s.roles {
		if id, ok := s.actors[r]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Sequence) bind(role string, id ecs.EntityID) {
	if old, ok := s.actors[role]; ok {
		s.world.DestroyEntity(old)
	} else {
		s.roles = append(s.roles, role)
	}
	s.actors[role] = id
}

func (s *Sequence) enter(i int) {
	if s.finished {
		return
	}
	if i >= len(s.script.Stages) {
		s.stage = i
		s.end(false)
		return
	}
	s.stage = i
	st := s.script.Stages[i]
	for _, a := range st.Enter {
		a(s)
	}
	complete := func() { s.complete(i) }
	switch {
	case st.Move != nil:
		var targets []ecs.EntityID
		for _, r := range st.Move.Actors {
			if id, ok := s.actors[r]; ok {
				targets = append(targets, id)
			}
		}
		s.pending = s.tl.Tween(Tween{
			Targets:  targets,
			To:       st.Move.To,
			Duration: st.Move.Duration,
			Ease:     st.Move.Ease,
		}, complete)
	case st.Hold > 0:
		s.pending = s.tl.After(st.Hold, complete)
	default:
		complete()
	}
}

func (s *Sequence) complete(i int) {
	if s.finished || i != s.stage {
		return
	}
	s.pending = Handle{}
	st := s.script.Stages[i]
	for _, a := range st.Exit {
		a(s)
	}
	s.completed = append(s.completed, st.Name)
	s.enter(i + 1)
}

// Cancel stops the sequence: the pending motion or hold is dropped and every
// entity it owns is destroyed. Cancelling a finished sequence is a no-op.
func (s *Sequence) Cancel() {
	if s.finished {
		return
	}
	s.pending.Cancel()
	s.pending = Handle{}
	s.end(true)
}

func (s *Sequence) end(cancelled bool) {
	s.finished = true
	s.cancelled = cancelled
	for _, id := range s.Actors() {
		s.world.DestroyEntity(id)
	}
	s.actors = map[string]ecs.EntityID{}
	if s.onEnd != nil {
		s.onEnd(s)
	}
}
