package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (OLEDANIM_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("core-props", os.Getenv("OLEDANIM_CORE_PROPS"), &cfg.CorePropsPath)
	s.setString("address", os.Getenv("OLEDANIM_ADDRESS"), &cfg.Address)
	s.setString("game", os.Getenv("OLEDANIM_GAME"), &cfg.Game)
	s.setString("event", os.Getenv("OLEDANIM_EVENT"), &cfg.Event)
	s.setString("display-name", os.Getenv("OLEDANIM_DISPLAY_NAME"), &cfg.DisplayName)
	s.setString("developer", os.Getenv("OLEDANIM_DEVELOPER"), &cfg.Developer)
	s.setString("log-level", os.Getenv("OLEDANIM_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("delay", os.Getenv("OLEDANIM_DELAY"), &cfg.Delay); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("OLEDANIM_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("cycles", os.Getenv("OLEDANIM_CYCLES"), &cfg.Cycles); err != nil {
		return err
	}

	s.setBoolFromString("wait-for-engine", os.Getenv("OLEDANIM_WAIT_FOR_ENGINE"), &cfg.WaitForEngine)
	s.setBoolFromString("log-json", os.Getenv("OLEDANIM_LOG_JSON"), &cfg.LogJSON)

	return nil
}
