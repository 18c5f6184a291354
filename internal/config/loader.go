package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-descent/internal/core"
)

// LoadDescent loads the game configuration.
// Search order: customPath -> ~/.descent/configs/descent.{yaml,yml,toml} ->
// ./configs/descent.yaml -> embedded default.
// Only an explicit customPath can produce an error; discovered files that
// fail to parse or validate are skipped.
func LoadDescent(customPath string) (DescentConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DescentConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatOf(customPath))
		if err != nil {
			return DescentConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, formatOf(path)); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultDescentYAML, FormatYAML)
	if err != nil {
		return DefaultDescentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes data over the hardcoded defaults and validates the result,
// so a file only needs the keys it wants to change.
func Parse(data []byte, format Format) (DescentConfig, error) {
	cfg := DefaultDescentConfig()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return DescentConfig{}, fmt.Errorf("toml decode: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DescentConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return DescentConfig{}, fmt.Errorf("unknown format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return DescentConfig{}, err
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".descent", "configs")
		for _, ext := range FormatExtensions() {
			paths = append(paths, filepath.Join(dir, "descent"+ext))
		}
	}
	return append(paths, filepath.Join("configs", "descent.yaml"))
}

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable level.
func (c DescentConfig) Validate() error {
	l := c.Level
	switch {
	case l.HoleWidth <= 0 || l.HoleWidth >= 1:
		return fmt.Errorf("%w: level.hole_width must be in (0, 1), got %v", ErrInvalid, l.HoleWidth)
	case l.BarrierInterval <= 0:
		return fmt.Errorf("%w: level.barrier_interval must be positive, got %v", ErrInvalid, l.BarrierInterval)
	case l.InitialBarrierHeight <= 0:
		return fmt.Errorf("%w: level.initial_barrier_height must be positive, got %v", ErrInvalid, l.InitialBarrierHeight)
	case l.MaxBarrierHeight < l.InitialBarrierHeight:
		return fmt.Errorf("%w: level.max_barrier_height %v is below initial height %v", ErrInvalid, l.MaxBarrierHeight, l.InitialBarrierHeight)
	case l.MaxBarrierHeight >= l.BarrierInterval:
		return fmt.Errorf("%w: level.max_barrier_height %v must be below barrier_interval %v", ErrInvalid, l.MaxBarrierHeight, l.BarrierInterval)
	case l.SideWallWidth < 0 || l.SideWallWidth >= 0.5:
		return fmt.Errorf("%w: level.side_wall_width must be in [0, 0.5), got %v", ErrInvalid, l.SideWallWidth)
	case l.TokenY <= 0 || l.TokenY >= 1:
		return fmt.Errorf("%w: level.token_y must be in (0, 1), got %v", ErrInvalid, l.TokenY)
	case l.SpawnMin > l.SpawnMax || l.SpawnMin < 0 || l.SpawnMax > 1:
		return fmt.Errorf("%w: level.spawn_min/spawn_max must satisfy 0 <= min <= max <= 1", ErrInvalid)
	}

	p := c.Physics
	switch {
	case p.BaseSpeed <= 0:
		return fmt.Errorf("%w: physics.base_speed must be positive, got %v", ErrInvalid, p.BaseSpeed)
	case p.SpeedPerMileage < 0:
		return fmt.Errorf("%w: physics.speed_per_mileage must not be negative", ErrInvalid)
	case len(p.SteerAnglesDeg) < 2:
		return fmt.Errorf("%w: physics.steer_angles_deg needs at least two entries", ErrInvalid)
	case p.Smoothing <= 0 || p.Smoothing > 1:
		return fmt.Errorf("%w: physics.smoothing must be in (0, 1], got %v", ErrInvalid, p.Smoothing)
	}
	for i, a := range p.SteerAnglesDeg {
		if a < 0 || a >= 90 {
			return fmt.Errorf("%w: physics.steer_angles_deg[%d] must be in [0, 90), got %v", ErrInvalid, i, a)
		}
	}

	if c.Scoring.PointsPerMileage <= 0 {
		return fmt.Errorf("%w: scoring.points_per_mileage must be positive", ErrInvalid)
	}
	if c.Gameplay.GameOverDelayTicks < 0 {
		return fmt.Errorf("%w: gameplay.game_over_delay_ticks must not be negative", ErrInvalid)
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %v", ErrInvalid, d.InitialLevel)
	}
	switch d.Progression.Type {
	case "mileage", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type must be \"mileage\" or \"none\", got %q", ErrInvalid, d.Progression.Type)
	}

	for _, tc := range []struct{ key, name string }{
		{"barrier", c.Theme.Barrier},
		{"wall", c.Theme.Wall},
		{"token", c.Theme.Token},
		{"hud", c.Theme.HUD},
	} {
		if _, err := core.ParseColor(tc.name); err != nil {
			return fmt.Errorf("%w: theme.%s: %v", ErrInvalid, tc.key, err)
		}
	}
	return nil
}
