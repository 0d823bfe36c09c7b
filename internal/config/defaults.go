package config

import (
	_ "embed"
)

//go:embed defaults/cavern.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		MaxLevel: 10,
		Lives:    3,
		Physics: PhysicsConfig{
			TargetVX:               30.0,
			AccelGround:            200.0,
			AccelAir:               80.0,
			JumpVY:                 -28.0,
			Gravity:                80.0,
			CoyoteTime:             0.1,
			JumpBufferTime:         0.1,
			JumpReleaseGravityMult: 3.0,
			Friction:               400.0,
		},
		Generator: GeneratorConfig{
			FloorHazardChance:     30,
			FirstLevelFloorChance: 10,
			PlatformHazardChance:  15,
			DensityWindow:         15,
			DensityLimit:          4,
		},
		Movement: MovementConfig{
			MaxRise:        4,
			JumpHalfWidths: []int{5, 8, 10, 12},
		},
	}
}
