package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	CorePropsPath string   `toml:"core_props"`
	Address       string   `toml:"address"`
	Game          string   `toml:"game"`
	Event         string   `toml:"event"`
	DisplayName   string   `toml:"display_name"`
	Developer     string   `toml:"developer"`
	Delay         string   `toml:"delay"`
	HTTPTimeout   string   `toml:"http_timeout"`
	Cycles        int      `toml:"cycles"`
	WaitForEngine *bool    `toml:"wait_for_engine"`
	LogLevel      string   `toml:"log_level"`
	LogJSON       *bool    `toml:"log_json"`
	Frames        []string `toml:"frames"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.oledanim/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".oledanim", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("core-props", fc.CorePropsPath, &cfg.CorePropsPath)
	s.setString("address", fc.Address, &cfg.Address)
	s.setString("game", fc.Game, &cfg.Game)
	s.setString("event", fc.Event, &cfg.Event)
	s.setString("display-name", fc.DisplayName, &cfg.DisplayName)
	s.setString("developer", fc.Developer, &cfg.Developer)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("delay", fc.Delay, &cfg.Delay); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("cycles", fc.Cycles, &cfg.Cycles)

	s.setBool("wait-for-engine", fc.WaitForEngine, &cfg.WaitForEngine)
	s.setBool("log-json", fc.LogJSON, &cfg.LogJSON)

	s.setStrings("frames", fc.Frames, &cfg.Frames)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
