package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/CDXX710/GameDAC-Animation/internal/domain"
)

// Config holds CLI configuration for oledanim.
type Config struct {
	// CorePropsPath overrides the platform coreProps.json location.
	CorePropsPath string
	// Address is a host:port that skips coreProps discovery entirely.
	Address string

	Game        string
	Event       string
	DisplayName string
	Developer   string

	Delay       time.Duration
	HTTPTimeout time.Duration
	Cycles      int

	WaitForEngine bool

	LogLevel string
	LogJSON  bool

	Frames []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Game:        domain.DefaultGame,
		Event:       domain.DefaultEvent,
		DisplayName: domain.DefaultDisplayName,
		Developer:   domain.DefaultDeveloper,
		Delay:       500 * time.Millisecond,
		HTTPTimeout: 5 * time.Second,
		LogLevel:    "info",
		Frames:      append([]string(nil), domain.DefaultFrames...),
	}
}

// Identity returns the game/event identity described by the config.
func (c Config) Identity() domain.Identity {
	return domain.Identity{
		Game:        c.Game,
		Event:       c.Event,
		DisplayName: c.DisplayName,
		Developer:   c.Developer,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if err := validateID("game", c.Game); err != nil {
		return err
	}
	if err := validateID("event", c.Event); err != nil {
		return err
	}
	if c.DisplayName == "" {
		c.DisplayName = c.Game
	}
	if c.Delay <= 0 {
		return fmt.Errorf("%w: delay must be positive", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidConfig)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("%w: cycles cannot be negative", domain.ErrInvalidConfig)
	}
	if len(c.Frames) == 0 {
		return fmt.Errorf("%w: at least one frame is required", domain.ErrInvalidConfig)
	}
	return nil
}

// validateID enforces the GameSense id alphabet: A-Z, 0-9, hyphen, underscore.
func validateID(name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidConfig, name)
	}
	for _, r := range v {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %s %q may only contain A-Z, 0-9, '-' and '_'", domain.ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the new one is non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
