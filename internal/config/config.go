// Package config provides YAML-based configuration for the cavern
// game: physics constants, generator tuning, and the movement envelope
// used by level validation.
package config

import (
	"github.com/vovakirdan/cavern/internal/level"
	"github.com/vovakirdan/cavern/internal/validate"
)

// Config is the full game configuration.
type Config struct {
	MaxLevel  uint32          `yaml:"max_level"`
	Lives     int             `yaml:"lives"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Generator GeneratorConfig `yaml:"generator"`
	Movement  MovementConfig  `yaml:"movement"`
}

// PhysicsConfig defines the player movement constants, in tile units
// per second.
type PhysicsConfig struct {
	TargetVX               float64 `yaml:"target_vx"`
	AccelGround            float64 `yaml:"accel_ground"`
	AccelAir               float64 `yaml:"accel_air"`
	JumpVY                 float64 `yaml:"jump_vy"`
	Gravity                float64 `yaml:"gravity"`
	CoyoteTime             float64 `yaml:"coyote_time"`
	JumpBufferTime         float64 `yaml:"jump_buffer_time"`
	JumpReleaseGravityMult float64 `yaml:"jump_release_gravity_mult"`
	Friction               float64 `yaml:"friction"`
}

// GeneratorConfig tunes hazard placement during level generation.
type GeneratorConfig struct {
	FloorHazardChance     uint32 `yaml:"floor_hazard_chance"`
	FirstLevelFloorChance uint32 `yaml:"first_level_floor_chance"`
	PlatformHazardChance  uint32 `yaml:"platform_hazard_chance"`
	DensityWindow         int    `yaml:"density_window"`
	DensityLimit          int    `yaml:"density_limit"`
}

// MovementConfig describes the jump envelope the validator assumes.
// The half-width table approximates the jump arc under the default
// physics; it is configuration rather than a constant so that physics
// changes can be matched here.
type MovementConfig struct {
	MaxRise        int   `yaml:"max_rise"`
	JumpHalfWidths []int `yaml:"jump_half_widths"`
}

// GenParams converts the generator section to level generation
// parameters.
func (c Config) GenParams() level.GenParams {
	return level.GenParams{
		FloorHazardChance:     c.Generator.FloorHazardChance,
		FirstLevelFloorChance: c.Generator.FirstLevelFloorChance,
		PlatformHazardChance:  c.Generator.PlatformHazardChance,
		DensityWindow:         c.Generator.DensityWindow,
		DensityLimit:          c.Generator.DensityLimit,
	}
}

// Envelope converts the movement section to a validation envelope.
func (c Config) Envelope() validate.Envelope {
	return validate.Envelope{
		MaxRise:   c.Movement.MaxRise,
		HalfWidth: c.Movement.JumpHalfWidths,
	}
}
