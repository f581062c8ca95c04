// Package config provides YAML/TOML game configuration loading and
// validation for blockflap.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockflap/internal/core"
)

// Config contains all tunables of the game. Every value is a session
// constant: nothing here changes while a game is running.
type Config struct {
	Screen    Screen    `yaml:"screen" toml:"screen"`
	Player    Player    `yaml:"player" toml:"player"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Palette   []string  `yaml:"palette" toml:"palette"`
	Layout    Layout    `yaml:"layout" toml:"layout"`
	Audio     Audio     `yaml:"audio" toml:"audio"`
}

// Screen defines the fixed logical render surface.
type Screen struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Player defines the block's fixed horizontal position and size.
type Player struct {
	X    float64 `yaml:"x" toml:"x"`
	Size float64 `yaml:"size" toml:"size"`
}

// Physics defines per-frame integration constants.
type Physics struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"` // Added to velocity every frame without a flap
	Jump    float64 `yaml:"jump" toml:"jump"`       // Velocity set by a flap (negative = up)

	// RestartVelocity is the velocity a restarted session begins with.
	// Nil means -obstacles.flight_speed.
	RestartVelocity *float64 `yaml:"restart_velocity,omitempty" toml:"restart_velocity,omitempty"`
}

// Obstacles defines pipe geometry and spawning.
type Obstacles struct {
	PipeWidth   float64 `yaml:"pipe_width" toml:"pipe_width"`
	GapHalf     float64 `yaml:"gap_half_height" toml:"gap_half_height"`
	FlightSpeed float64 `yaml:"flight_speed" toml:"flight_speed"`
	InitGapY    float64 `yaml:"init_gap_y" toml:"init_gap_y"` // First gap center and width of the random range
}

// Layout positions the text overlays.
type Layout struct {
	ScoreX    float64 `yaml:"score_x" toml:"score_x"`
	ScoreY    float64 `yaml:"score_y" toml:"score_y"`
	GameOverX float64 `yaml:"game_over_x" toml:"game_over_x"`
	GameOverY float64 `yaml:"game_over_y" toml:"game_over_y"`
}

// Audio toggles the fire-and-forget sound triggers.
type Audio struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	Flap    bool `yaml:"flap" toml:"flap"`
	Hit     bool `yaml:"hit" toml:"hit"`
}

// RestartVelocity returns the configured restart velocity or the
// -flight_speed default.
func (c Config) RestartVelocity() float64 {
	if c.Physics.RestartVelocity != nil {
		return *c.Physics.RestartVelocity
	}
	return -c.Obstacles.FlightSpeed
}

// SpawnX is where new obstacles enter: the right edge of the surface.
func (c Config) SpawnX() float64 {
	return float64(c.Screen.Width)
}

// HitboxRight is the player's right threshold used by collision checks.
func (c Config) HitboxRight() float64 {
	return c.Player.X + c.Player.Size
}

// PaletteColors returns the palette as a fixed array. Call Validate first;
// missing entries fall back to the default palette.
func (c Config) PaletteColors() core.Palette {
	p := core.DefaultPalette
	for i := 0; i < len(c.Palette) && i < core.PaletteSize; i++ {
		p[i] = c.Palette[i]
	}
	return p
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player.size must be positive, got %g", c.Player.Size))
	}
	if c.Obstacles.PipeWidth <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.pipe_width must be positive, got %g", c.Obstacles.PipeWidth))
	}
	if c.Obstacles.GapHalf <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_half_height must be positive, got %g", c.Obstacles.GapHalf))
	}
	if c.Obstacles.FlightSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.flight_speed must be positive, got %g", c.Obstacles.FlightSpeed))
	}
	if c.Obstacles.InitGapY < 0 {
		errs = append(errs, fmt.Errorf("obstacles.init_gap_y must not be negative, got %g", c.Obstacles.InitGapY))
	}
	if len(c.Palette) != core.PaletteSize {
		errs = append(errs, fmt.Errorf("palette must have %d entries, got %d", core.PaletteSize, len(c.Palette)))
	}
	return errors.Join(errs...)
}

// CanScore reports whether obstacles ever land exactly on the player's X.
// Scoring uses exact equality, so a spawn distance that is not a whole
// number of flight steps means no obstacle is ever counted.
func (c Config) CanScore() bool {
	if c.Obstacles.FlightSpeed <= 0 {
		return false
	}
	steps := (c.SpawnX() - c.Player.X) / c.Obstacles.FlightSpeed
	return steps >= 0 && steps == float64(int64(steps))
}
