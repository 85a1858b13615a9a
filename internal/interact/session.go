package interact

import (
	"district9/assets"
	"district9/internal/component"
	"district9/internal/ecs"
)

// Session is one open dialogue. Its only capability is Dismiss, which every
// dismiss input path calls.
type Session struct {
	ID       uint64
	NPC      ecs.EntityID
	NPCName  string
	Category component.Category
	Pool     assets.Pool
	Line     string

	m      *Machine
	closed bool
}

// Dismiss closes the session and releases the interaction lock. Only the
// first call has an effect.
func (s *Session) Dismiss() bool {
	return s.m.close(s)
}

// Active reports whether the session is still open.
func (s *Session) Active() bool {
	return !s.closed
}
