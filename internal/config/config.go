// Package config provides YAML/TOML tuning for the pong game: loading with a
// search order, validation and hot reload.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// PongConfig contains all tuning for the Pong game.
type PongConfig struct {
	Physics  PongPhysics  `yaml:"physics" toml:"physics"`
	Geometry PongGeometry `yaml:"geometry" toml:"geometry"`
	Gameplay PongGameplay `yaml:"gameplay" toml:"gameplay"`
	Input    PongInput    `yaml:"input" toml:"input"`
}

// PongPhysics defines per-tick motion parameters.
type PongPhysics struct {
	BallSpeed    float32 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleSpeed  float32 `yaml:"paddle_speed" toml:"paddle_speed"`
	Perturbation float32 `yaml:"perturbation" toml:"perturbation"` // Max spin added by a moving paddle
}

// PongGeometry defines entity sizes and placement in device coordinates.
type PongGeometry struct {
	BallWidth    float32 `yaml:"ball_width" toml:"ball_width"`
	PaddleWidth  float32 `yaml:"paddle_width" toml:"paddle_width"`
	PaddleHeight float32 `yaml:"paddle_height" toml:"paddle_height"`
	PaddleInset  float32 `yaml:"paddle_inset" toml:"paddle_inset"` // Paddle x as a fraction of the aspect
	ServeOffset  float32 `yaml:"serve_offset" toml:"serve_offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	MatchPoint int `yaml:"match_point" toml:"match_point"`
}

// PongInput defines how key presses become held keys.
type PongInput struct {
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// Validate checks that every value is usable by the game.
func (c PongConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Physics.BallSpeed > 0, "physics.ball_speed must be > 0"},
		{c.Physics.PaddleSpeed > 0, "physics.paddle_speed must be > 0"},
		{c.Physics.Perturbation >= 0, "physics.perturbation must be >= 0"},
		{c.Geometry.BallWidth > 0 && c.Geometry.BallWidth < 2, "geometry.ball_width must be in (0, 2)"},
		{c.Geometry.PaddleWidth > 0, "geometry.paddle_width must be > 0"},
		{c.Geometry.PaddleHeight > 0 && c.Geometry.PaddleHeight < 2, "geometry.paddle_height must be in (0, 2)"},
		{c.Geometry.PaddleInset > 0 && c.Geometry.PaddleInset <= 1, "geometry.paddle_inset must be in (0, 1]"},
		{c.Geometry.ServeOffset > 0, "geometry.serve_offset must be > 0"},
		{c.Gameplay.MatchPoint > 0, "gameplay.match_point must be > 0"},
		{c.Input.HoldMS > 0, "input.hold_ms must be > 0"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, check.msg)
		}
	}
	return nil
}
