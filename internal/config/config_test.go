package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.DeliverySpots, 4)
	assert.Len(t, cfg.VisitSpots, 6)
	assert.Equal(t, 14, cfg.AmbientCount)
	assert.Equal(t, 70.0, cfg.InteractDistance)
	assert.Equal(t, 2200*time.Millisecond, cfg.Delivery.FlyIn)
	assert.Equal(t, time.Second/30, cfg.TickInterval())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte(`
player_speed: 200
interact_distance: 90
delivery:
  hold: 1500ms
visit_spots:
  - {x: 100, y: 100}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.PlayerSpeed)
	assert.Equal(t, 90.0, cfg.InteractDistance)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delivery.Hold)
	assert.Equal(t, 2200*time.Millisecond, cfg.Delivery.FlyIn, "untouched fields keep defaults")
	assert.Equal(t, []Point{{100, 100}}, cfg.VisitSpots)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("follow_factor: 1.5\njoystick_radius: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "follow_factor")
	assert.Contains(t, err.Error(), "joystick_radius")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
