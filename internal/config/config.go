// Package config provides YAML/TOML game configuration loading and
// difficulty management.
package config

// DescentConfig contains all configuration for the descent game.
type DescentConfig struct {
	Level      LevelConfig      `yaml:"level" toml:"level"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Theme      ThemeConfig      `yaml:"theme" toml:"theme"`
}

// LevelConfig defines barrier geometry in normalized playfield units (0..1).
type LevelConfig struct {
	HoleWidth            float64 `yaml:"hole_width" toml:"hole_width"`
	BarrierInterval      float64 `yaml:"barrier_interval" toml:"barrier_interval"`
	InitialBarrierHeight float64 `yaml:"initial_barrier_height" toml:"initial_barrier_height"`
	MaxBarrierHeight     float64 `yaml:"max_barrier_height" toml:"max_barrier_height"`
	SideWallWidth        float64 `yaml:"side_wall_width" toml:"side_wall_width"`
	TokenY               float64 `yaml:"token_y" toml:"token_y"`
	SpawnMin             float64 `yaml:"spawn_min" toml:"spawn_min"`
	SpawnMax             float64 `yaml:"spawn_max" toml:"spawn_max"`
}

// PhysicsConfig defines token motion.
type PhysicsConfig struct {
	BaseSpeed       float64   `yaml:"base_speed" toml:"base_speed"`
	SpeedPerMileage float64   `yaml:"speed_per_mileage" toml:"speed_per_mileage"`
	SteerAnglesDeg  []float64 `yaml:"steer_angles_deg" toml:"steer_angles_deg"` // index = |direction|
	Smoothing       float64   `yaml:"smoothing" toml:"smoothing"`               // 1.0 = no smoothing
}

// ScoringConfig defines how mileage converts to score.
type ScoringConfig struct {
	PointsPerMileage float64 `yaml:"points_per_mileage" toml:"points_per_mileage"`
}

// GameplayConfig defines scene timing.
type GameplayConfig struct {
	GameOverDelayTicks int `yaml:"game_over_delay_ticks" toml:"game_over_delay_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type" toml:"type"`     // "mileage" or "none"
	MaxAt float64 `yaml:"max_at" toml:"max_at"` // Mileage at which max difficulty is reached
}

// ThemeConfig names the colours of the game elements (see core.ParseColor).
type ThemeConfig struct {
	Barrier string `yaml:"barrier" toml:"barrier"`
	Wall    string `yaml:"wall" toml:"wall"`
	Token   string `yaml:"token" toml:"token"`
	HUD     string `yaml:"hud" toml:"hud"`
}

// MaxDirection returns the largest steering step the angle table supports.
func (p PhysicsConfig) MaxDirection() int {
	return len(p.SteerAnglesDeg) - 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DescentConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
