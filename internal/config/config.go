// Package config holds every tunable constant of the scene. The scene core
// only ever sees a Tuning value; reading it from disk is the binaries' job.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Point is a world position in a tuning file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned region; Min inclusive, Max inclusive.
type Rect struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// Tuning is the full set of scene constants.
type Tuning struct {
	// World
	WorldWidth  float64       `yaml:"world_width"`
	WorldHeight float64       `yaml:"world_height"`
	TickRate    int           `yaml:"tick_rate"` // ticks per second
	KeyHold     time.Duration `yaml:"key_hold"`  // how long a terminal key event counts as held

	// Player
	PlayerStart Point   `yaml:"player_start"`
	PlayerSpeed float64 `yaml:"player_speed"`

	// Virtual joystick
	JoystickRadius float64 `yaml:"joystick_radius"`
	JoystickSpeed  float64 `yaml:"joystick_speed"`

	// Interaction
	InteractDistance float64 `yaml:"interact_distance"`

	// Companion
	FollowFactor float64 `yaml:"follow_factor"`
	FollowOffset float64 `yaml:"follow_offset"`

	// NPC layout. Category is decided by position in the creation order:
	// delivery spots first, then visit spots, then ambient residents.
	DeliverySpots []Point `yaml:"delivery_spots"`
	VisitSpots    []Point `yaml:"visit_spots"`
	AmbientCount  int     `yaml:"ambient_count"`
	AmbientRegion Rect    `yaml:"ambient_region"`
	NPCSprites    int     `yaml:"npc_sprites"`

	Delivery DeliveryTiming `yaml:"delivery"`
	Visit    VisitTiming    `yaml:"visit"`

	// Off-screen X coordinates drones enter from and leave to.
	OffscreenLeft  float64 `yaml:"offscreen_left"`
	OffscreenRight float64 `yaml:"offscreen_right"`
	Ease           string  `yaml:"ease"`
}

// DeliveryTiming configures the five-stage delivery flight.
// Heights are offsets from the NPC's Y.
type DeliveryTiming struct {
	FlyIn        time.Duration `yaml:"fly_in"`
	Descend      time.Duration `yaml:"descend"`
	Hold         time.Duration `yaml:"hold"`
	Depart       time.Duration `yaml:"depart"`
	DroneHeight  float64       `yaml:"drone_height"`
	CargoHeight  float64       `yaml:"cargo_height"`
	LandedHeight float64       `yaml:"landed_height"`
}

// VisitTiming configures the three-stage visit flight.
type VisitTiming struct {
	FlyIn       time.Duration `yaml:"fly_in"`
	Hold        time.Duration `yaml:"hold"`
	Depart      time.Duration `yaml:"depart"`
	DroneHeight float64       `yaml:"drone_height"`
}

// Default returns the stock District 9 tuning.
func Default() Tuning {
	return Tuning{
		WorldWidth:  960,
		WorldHeight: 640,
		TickRate:    30,
		KeyHold:     250 * time.Millisecond,

		PlayerStart: Point{X: 480, Y: 500},
		PlayerSpeed: 140,

		JoystickRadius: 60,
		JoystickSpeed:  150,

		InteractDistance: 70,

		FollowFactor: 0.1,
		FollowOffset: 50,

		DeliverySpots: []Point{{210, 170}, {270, 200}, {320, 250}, {400, 220}},
		VisitSpots:    []Point{{550, 420}, {600, 340}, {640, 400}, {700, 380}, {720, 470}, {760, 430}},
		AmbientCount:  14,
		AmbientRegion: Rect{MinX: 150, MinY: 270, MaxX: 850, MaxY: 570},
		NPCSprites:    24,

		Delivery: DeliveryTiming{
			FlyIn:        2200 * time.Millisecond,
			Descend:      1000 * time.Millisecond,
			Hold:         4000 * time.Millisecond,
			Depart:       2500 * time.Millisecond,
			DroneHeight:  -150,
			CargoHeight:  -120,
			LandedHeight: -20,
		},
		Visit: VisitTiming{
			FlyIn:       2000 * time.Millisecond,
			Hold:        4000 * time.Millisecond,
			Depart:      2000 * time.Millisecond,
			DroneHeight: -120,
		},

		OffscreenLeft:  -150,
		OffscreenRight: 1100,
		Ease:           "sine",
	}
}

// TickInterval is the wall time of one logical frame.
func (t Tuning) TickInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(t.TickRate)
}

// Load overlays the YAML file at path onto Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (Tuning, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("reading tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("parsing tuning file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	positive("world_width", t.WorldWidth)
	positive("world_height", t.WorldHeight)
	positive("player_speed", t.PlayerSpeed)
	positive("joystick_radius", t.JoystickRadius)
	positive("joystick_speed", t.JoystickSpeed)
	positive("interact_distance", t.InteractDistance)
	if t.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be > 0, got %d", t.TickRate))
	}
	if t.FollowFactor <= 0 || t.FollowFactor >= 1 {
		errs = append(errs, fmt.Errorf("follow_factor must be in (0,1), got %v", t.FollowFactor))
	}
	if t.AmbientCount < 0 {
		errs = append(errs, fmt.Errorf("ambient_count must be >= 0, got %d", t.AmbientCount))
	}
	if t.AmbientCount > 0 && (t.AmbientRegion.MaxX < t.AmbientRegion.MinX || t.AmbientRegion.MaxY < t.AmbientRegion.MinY) {
		errs = append(errs, errors.New("ambient_region max must not be below min"))
	}
	if t.NPCSprites <= 0 {
		errs = append(errs, fmt.Errorf("npc_sprites must be > 0, got %d", t.NPCSprites))
	}
	for name, d := range map[string]time.Duration{
		"delivery.fly_in":  t.Delivery.FlyIn,
		"delivery.descend": t.Delivery.Descend,
		"delivery.depart":  t.Delivery.Depart,
		"visit.fly_in":     t.Visit.FlyIn,
		"visit.depart":     t.Visit.Depart,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, d))
		}
	}
	if t.Delivery.Hold < 0 || t.Visit.Hold < 0 {
		errs = append(errs, errors.New("hold delays must not be negative"))
	}
	return errors.Join(errs...)
}
