package config

import (
	_ "embed"
)

//go:embed defaults/descent.yaml
var defaultDescentYAML []byte

// DefaultDescentConfig returns the hardcoded default configuration.
// It mirrors defaults/descent.yaml.
func DefaultDescentConfig() DescentConfig {
	return DescentConfig{
		Level: LevelConfig{
			HoleWidth:            0.25,
			BarrierInterval:      0.5,
			InitialBarrierHeight: 0.1,
			MaxBarrierHeight:     0.3,
			SideWallWidth:        0.1,
			TokenY:               0.2,
			SpawnMin:             0.4,
			SpawnMax:             0.6,
		},
		Physics: PhysicsConfig{
			BaseSpeed:       5e-3,
			SpeedPerMileage: 5e-5,
			SteerAnglesDeg:  []float64{0, 30, 45, 60},
			Smoothing:       0.1,
		},
		Scoring: ScoringConfig{
			PointsPerMileage: 5,
		},
		Gameplay: GameplayConfig{
			GameOverDelayTicks: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "mileage",
				MaxAt: 100,
			},
		},
		Theme: ThemeConfig{
			Barrier: "white",
			Wall:    "gray",
			Token:   "bright_red",
			HUD:     "bright_yellow",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDescentYAML
}
