package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Game != "CUSTOM_OLED_ANIMATION" {
		t.Errorf("Game = %v, want CUSTOM_OLED_ANIMATION", cfg.Game)
	}
	if cfg.Event != "ANIMATION" {
		t.Errorf("Event = %v, want ANIMATION", cfg.Event)
	}
	if cfg.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, want 500ms", cfg.Delay)
	}
	if cfg.Cycles != 0 {
		t.Errorf("Cycles = %v, want 0 (forever)", cfg.Cycles)
	}
	if len(cfg.Frames) != len(domain.DefaultFrames) {
		t.Errorf("len(Frames) = %d, want %d", len(cfg.Frames), len(domain.DefaultFrames))
	}

	// Frames must be a copy of the built-in set.
	cfg.Frames[0] = "changed"
	if domain.DefaultFrames[0] == "changed" {
		t.Error("DefaultConfig shares the DefaultFrames backing array")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config { return DefaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "missing game", mutate: func(c *Config) { c.Game = "" }, wantErr: true},
		{name: "lower-case game", mutate: func(c *Config) { c.Game = "custom" }, wantErr: true},
		{name: "game with digits and dash", mutate: func(c *Config) { c.Game = "OLED-2_X" }},
		{name: "event with space", mutate: func(c *Config) { c.Event = "MY EVENT" }, wantErr: true},
		{name: "zero delay", mutate: func(c *Config) { c.Delay = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTPTimeout = -time.Second }, wantErr: true},
		{name: "negative cycles", mutate: func(c *Config) { c.Cycles = -1 }, wantErr: true},
		{name: "no frames", mutate: func(c *Config) { c.Frames = nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_DisplayNameDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisplayName = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.DisplayName != cfg.Game {
		t.Errorf("DisplayName = %v, want %v", cfg.DisplayName, cfg.Game)
	}
}

func TestConfig_Identity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Game = "DEMO"
	id := cfg.Identity()
	if id.Game != "DEMO" || id.Event != domain.DefaultEvent || id.Developer != domain.DefaultDeveloper {
		t.Errorf("Identity() = %+v", id)
	}
}
