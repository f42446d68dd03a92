package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestMotionFor(t *testing.T) {
	cfg := Default()
	if got := cfg.MotionFor(false); got != cfg.Normal {
		t.Errorf("MotionFor(false) = %+v, want normal profile", got)
	}
	if got := cfg.MotionFor(true); got != cfg.Reduced {
		t.Errorf("MotionFor(true) = %+v, want reduced profile", got)
	}
	// Reduced profile must actually be calmer
	if cfg.Reduced.BaseSpeed >= cfg.Normal.BaseSpeed ||
		cfg.Reduced.ZoomAmplitude >= cfg.Normal.ZoomAmplitude ||
		cfg.Reduced.ZoomSpeed >= cfg.Normal.ZoomSpeed ||
		cfg.Reduced.RotationRate >= cfg.Normal.RotationRate {
		t.Errorf("reduced profile %+v is not below normal %+v", cfg.Reduced, cfg.Normal)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative stars", func(c *Config) { c.StarCount = -1 }},
		{"zero fov", func(c *Config) { c.FOV = 0 }},
		{"depth at near plane", func(c *Config) { c.Depth = 1 }},
		{"negative arms", func(c *Config) { c.Arms = -3 }},
		{"zero time step", func(c *Config) { c.TimeStep = 0 }},
		{"chance above one", func(c *Config) { c.ShootingStarChance = 1.5 }},
		{"zoom amplitude one", func(c *Config) { c.Reduced.ZoomAmplitude = 1 }},
		{"negative rotation", func(c *Config) { c.Normal.RotationRate = -0.1 }},
		{"nebula alpha", func(c *Config) { c.NebulaAlpha = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.json")
	if err := os.WriteFile(path, []byte(`{"star_count": 50, "reduced": {"base_speed": 0.01, "zoom_amplitude": 0.01}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StarCount != 50 {
		t.Errorf("StarCount = %d, want 50", cfg.StarCount)
	}
	if cfg.Reduced.BaseSpeed != 0.01 {
		t.Errorf("Reduced.BaseSpeed = %g, want 0.01", cfg.Reduced.BaseSpeed)
	}
	if cfg.Depth != Default().Depth {
		t.Errorf("Depth = %g, want default %g", cfg.Depth, Default().Depth)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"fov": -1}`), 0644)
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid value: err = %v, want ErrInvalid", err)
	}

	garbled := filepath.Join(dir, "garbled.json")
	os.WriteFile(garbled, []byte(`{star_count`), 0644)
	if _, err := Load(garbled); err == nil {
		t.Error("garbled file: expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	want := Default()
	want.Seed = 42
	want.Nebula = true

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load(Save(cfg)) = %+v, want %+v", got, want)
	}
}
