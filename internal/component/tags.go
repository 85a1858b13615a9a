package component

import "district9/internal/ecs"

const (
	CTagPlayer    ecs.ComponentType = 8
	CTagEphemeral ecs.ComponentType = 9
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEphemeral marks entities spawned by a drone sequence. Their lifetime is
// owned by that sequence.
type TagEphemeral struct {
	Role string // "drone" or "payload"
}

func (TagEphemeral) Type() ecs.ComponentType { return CTagEphemeral }
