package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPongConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultPongConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero ball speed", func(c *PongConfig) { c.Physics.BallSpeed = 0 }},
		{"negative paddle speed", func(c *PongConfig) { c.Physics.PaddleSpeed = -1 }},
		{"negative perturbation", func(c *PongConfig) { c.Physics.Perturbation = -0.1 }},
		{"ball wider than field", func(c *PongConfig) { c.Geometry.BallWidth = 2 }},
		{"paddle taller than field", func(c *PongConfig) { c.Geometry.PaddleHeight = 2.5 }},
		{"inset beyond edge", func(c *PongConfig) { c.Geometry.PaddleInset = 1.2 }},
		{"zero match point", func(c *PongConfig) { c.Gameplay.MatchPoint = 0 }},
		{"zero hold", func(c *PongConfig) { c.Input.HoldMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadFileYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  match_point: 5\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Gameplay.MatchPoint)
	assert.Equal(t, DefaultPongConfig().Physics, cfg.Physics)
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	data := "[physics]\nball_speed = 0.03\n\n[gameplay]\nmatch_point = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, cfg.Physics.BallSpeed, 1e-6)
	assert.Equal(t, 7, cfg.Gameplay.MatchPoint)
	assert.Equal(t, DefaultPongConfig().Geometry, cfg.Geometry)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("physics: [\n"), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("physics:\n  ball_speed: -1\n"), 0o600))
	_, err = LoadFile(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLocate(t *testing.T) {
	assert.Equal(t, "custom.yaml", Locate("custom.yaml"))

	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	assert.Equal(t, "", Locate(""), "no files means the embedded default")

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("gameplay:\n  match_point: 4\n"), 0o600))
	assert.Equal(t, filepath.Join("configs", "pong.yaml"), Locate(""))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Gameplay.MatchPoint)
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  match_point: 3\n"), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan PongConfig, 16)
	done := make(chan error, 1)
	onChange := func(cfg PongConfig) {
		select {
		case changes <- cfg:
		default:
		}
	}
	go func() {
		done <- w.Run(ctx, onChange, func(error) {})
	}()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  match_point: 9\n"), 0o600))

	// A write may surface as a truncate followed by the final content
	timeout := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			reloaded = cfg.Gameplay.MatchPoint == 9
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
