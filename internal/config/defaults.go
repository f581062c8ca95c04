package config

import (
	_ "embed"
)

//go:embed defaults/blockflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Screen: Screen{
			Width:  128,
			Height: 128,
		},
		Player: Player{
			X:    32,
			Size: 16,
		},
		Physics: Physics{
			Gravity: 0.1,
			Jump:    -2,
		},
		Obstacles: Obstacles{
			PipeWidth:   16,
			GapHalf:     40,
			FlightSpeed: 2,
			InitGapY:    64,
		},
		Palette: []string{"#000000", "#FFFFFF", "#FF77A8", "#29ADFF"},
		Layout: Layout{
			ScoreX:    60,
			ScoreY:    10,
			GameOverX: 34,
			GameOverY: 64,
		},
		Audio: Audio{
			Enabled: true,
			Flap:    false,
			Hit:     true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`
// style output or as a template for user configs.
func DefaultYAML() []byte {
	return defaultYAML
}
