// Package interact is the proximity interaction state machine: it decides
// when walking up to an NPC and pressing the action trigger opens a dialogue,
// picks the line, summons the NPC's drone, and closes the dialogue again.
package interact

import (
	"log/slog"
	"math/rand"

	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// State of the machine.
type State uint8

const (
	StateIdle State = iota
	StateTriggered
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateTriggered:
		return "Triggered"
	case StateDisplaying:
		return "Displaying"
	}
	return "Idle"
}

// Target is an NPC the player might talk to.
type Target struct {
	ID       ecs.EntityID
	Name     string
	Category component.Category
	Pos      vmath.Vec2
}

// Launcher starts the drone sequence an NPC's category calls for.
type Launcher interface {
	Launch(s *Session, t Target)
}

// Machine owns the dialogue surface and the single interaction lock.
// It is driven from the tick goroutine only.
type Machine struct {
	threshold float64
	rng       *rand.Rand
	launcher  Launcher
	log       *slog.Logger

	state   State
	session *Session
	text    string
	nextID  uint64
}

// NewMachine creates an idle machine. launcher may be nil.
func NewMachine(threshold float64, rng *rand.Rand, launcher Launcher, log *slog.Logger) *Machine {
	if log == nil {
		log = slog.Default()
	}
	return &Machine{threshold: threshold, rng: rng, launcher: launcher, log: log}
}

// State is the current state.
func (m *Machine) State() State { return m.state }

// Session is the active session, or nil when idle.
func (m *Machine) Session() *Session { return m.session }

// Text is what the dialogue overlay shows; empty when idle.
func (m *Machine) Text() string { return m.text }

// Trigger handles one trigger edge with the player at player. It opens a
// session with the nearest NPC strictly inside the interaction distance,
// breaking distance ties by lowest entity ID. Nothing happens while another
// session is open or when no NPC is close enough.
func (m *Machine) Trigger(player vmath.Vec2, npcs []Target) (*Session, bool) {
	if m.state != StateIdle {
		return nil, false
	}
	t, ok := m.nearest(player, npcs)
	if !ok {
		return nil, false
	}

	m.state = StateTriggered
	m.nextID++
	pool, line := Pick(m.rng, t.Category)
	s := &Session{
		ID:       m.nextID,
		NPC:      t.ID,
		NPCName:  t.Name,
		Category: t.Category,
		Pool:     pool,
		Line:     line,
		m:        m,
	}
	m.session = s
	m.text = line
	m.state = StateDisplaying
	m.log.Debug("interaction started", "session", s.ID, "npc", t.Name, "category", t.Category, "pool", pool)

	if m.launcher != nil && t.Category != component.CategoryAmbient {
		m.launcher.Launch(s, t)
	}
	return s, true
}

func (m *Machine) nearest(p vmath.Vec2, npcs []Target) (Target, bool) {
	var best Target
	bestDist := m.threshold
	found := false
	for _, t := range npcs {
		if !t.Category.Valid() {
			continue
		}
		d := vmath.Distance(p, t.Pos)
		if d >= m.threshold {
			continue
		}
		if !found || d < bestDist || (d == bestDist && t.ID < best.ID) {
			best, bestDist, found = t, d, true
		}
	}
	return best, found
}

// Dismiss closes the active session. It reports whether a session was open;
// dismissing while idle is a no-op.
func (m *Machine) Dismiss() bool {
	if m.session == nil {
		return false
	}
	return m.session.Dismiss()
}

func (m *Machine) close(s *Session) bool {
	if s.closed || m.session != s {
		return false
	}
	s.closed = true
	m.session = nil
	m.text = ""
	m.state = StateIdle
	m.log.Debug("interaction dismissed", "session", s.ID, "npc", s.NPCName)
	return true
}

// Narrate replaces the dialogue text on behalf of a drone sequence. Text for
// a session that is no longer displayed is dropped.
func (m *Machine) Narrate(owner uint64, text string) {
	if m.session == nil || m.session.ID != owner {
		return
	}
	m.text = text
}

// Reset drops any open session without logging a dismissal. Used on scene
// teardown.
func (m *Machine) Reset() {
	if m.session != nil {
		m.session.closed = true
	}
	m.session = nil
	m.text = ""
	m.state = StateIdle
}
