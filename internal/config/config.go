package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Motion holds the tunables that differ between normal and reduced motion.
type Motion struct {
	BaseSpeed     float64 `json:"base_speed"`
	ZoomAmplitude float64 `json:"zoom_amplitude"`
	ZoomSpeed     float64 `json:"zoom_speed"`
	RotationRate  float64 `json:"rotation_rate"`
}

// Config is the immutable set of tunables handed to the simulation at
// construction. Copy it, change fields, then pass it on.
type Config struct {
	// Starfield
	StarCount int     `json:"star_count"`
	FOV       float64 `json:"fov"`
	Depth     float64 `json:"depth"`

	// Spiral arms
	Arms         int     `json:"arms"`
	ArmParticles int     `json:"arm_particles"`
	ArmSpread    float64 `json:"arm_spread"`

	// Global speed knob
	SpeedMultiplier float64 `json:"speed_multiplier"`
	TimeStep        float64 `json:"time_step"`

	Normal  Motion `json:"normal"`
	Reduced Motion `json:"reduced"`

	CullMargin          float64 `json:"cull_margin"`
	StreakDepthFraction float64 `json:"streak_depth_fraction"`
	StreakLength        float64 `json:"streak_length"`
	ArmGlowThreshold    float64 `json:"arm_glow_threshold"`
	ShootingStarChance  float64 `json:"shooting_star_chance"`

	Nebula      bool    `json:"nebula"`
	NebulaAlpha float64 `json:"nebula_alpha"`

	// Seed for the random source, 0 picks one from the clock.
	Seed int64 `json:"seed"`
}

// Default returns the stock look of the effect.
func Default() Config {
	return Config{
		StarCount: 700,
		FOV:       420,
		Depth:     1800,

		Arms:         3,
		ArmParticles: 400,
		ArmSpread:    0.55,

		SpeedMultiplier: 1.8,
		TimeStep:        0.016,

		Normal: Motion{
			BaseSpeed:     0.14,
			ZoomAmplitude: 0.06,
			ZoomSpeed:     0.18,
			RotationRate:  0.08,
		},
		Reduced: Motion{
			BaseSpeed:     0.07,
			ZoomAmplitude: 0.025,
			ZoomSpeed:     0.12,
			RotationRate:  0.04,
		},

		CullMargin:          50,
		StreakDepthFraction: 0.35,
		StreakLength:        35,
		ArmGlowThreshold:    1.2,
		ShootingStarChance:  0.006,

		Nebula:      false,
		NebulaAlpha: 0.35,
	}
}

// MotionFor picks the profile matching the reduced-motion flag.
func (c Config) MotionFor(reduced bool) Motion {
	if reduced {
		return c.Reduced
	}
	return c.Normal
}

// Validate reports the first tunable outside its usable range.
func (c Config) Validate() error {
	switch {
	case c.StarCount < 0:
		return fmt.Errorf("%w: star_count %d < 0", ErrInvalid, c.StarCount)
	case c.FOV <= 0:
		return fmt.Errorf("%w: fov %g <= 0", ErrInvalid, c.FOV)
	case c.Depth <= 1:
		return fmt.Errorf("%w: depth %g must exceed the near plane", ErrInvalid, c.Depth)
	case c.Arms < 0 || c.ArmParticles < 0:
		return fmt.Errorf("%w: arms %d x %d", ErrInvalid, c.Arms, c.ArmParticles)
	case c.ArmSpread < 0:
		return fmt.Errorf("%w: arm_spread %g < 0", ErrInvalid, c.ArmSpread)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time_step %g <= 0", ErrInvalid, c.TimeStep)
	case c.SpeedMultiplier < 0:
		return fmt.Errorf("%w: speed_multiplier %g < 0", ErrInvalid, c.SpeedMultiplier)
	case c.ShootingStarChance < 0 || c.ShootingStarChance > 1:
		return fmt.Errorf("%w: shooting_star_chance %g outside [0,1]", ErrInvalid, c.ShootingStarChance)
	case c.NebulaAlpha < 0 || c.NebulaAlpha > 1:
		return fmt.Errorf("%w: nebula_alpha %g outside [0,1]", ErrInvalid, c.NebulaAlpha)
	}
	for name, m := range map[string]Motion{"normal": c.Normal, "reduced": c.Reduced} {
		if m.BaseSpeed < 0 || m.ZoomSpeed < 0 || m.RotationRate < 0 {
			return fmt.Errorf("%w: %s motion has a negative rate", ErrInvalid, name)
		}
		if m.ZoomAmplitude < 0 || m.ZoomAmplitude >= 1 {
			return fmt.Errorf("%w: %s zoom_amplitude %g outside [0,1)", ErrInvalid, name, m.ZoomAmplitude)
		}
	}
	return nil
}

// Load overlays the JSON file at path onto the defaults. Fields missing
// from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
