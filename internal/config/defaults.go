package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.02,
			PaddleSpeed:  0.015,
			Perturbation: 0.005,
		},
		Geometry: PongGeometry{
			BallWidth:    0.15,
			PaddleWidth:  0.1,
			PaddleHeight: 0.3,
			PaddleInset:  0.9,
			ServeOffset:  0.15,
		},
		Gameplay: PongGameplay{
			MatchPoint: 12,
		},
		Input: PongInput{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `pong config`.
func DefaultYAML() []byte {
	return defaultPongYAML
}
