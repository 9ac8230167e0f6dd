package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the daemon-connection configuration.
type Settings struct {
	URL          string `yaml:"url"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PollInterval string `yaml:"poll_interval"`
	WatchDir     string `yaml:"watch_dir"`
}

// DefaultSettings returns settings pointing at a local Transmission
// daemon on its stock port.
func DefaultSettings() *Settings {
	return &Settings{
		URL:          "http://localhost:9091/transmission/rpc",
		PollInterval: "5s",
	}
}

// Validate checks the settings document. Parse failures here are startup
// errors; there is no partial recovery.
func (s *Settings) Validate() error {
	if s.URL == "" {
		return errors.New("url is required")
	}
	if s.PollInterval != "" {
		if _, err := time.ParseDuration(s.PollInterval); err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
	}
	return nil
}

// Interval returns the poll interval, defaulting to five seconds.
func (s *Settings) Interval() time.Duration {
	if s.PollInterval == "" {
		return 5 * time.Second
	}
	d, err := time.ParseDuration(s.PollInterval)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// LoadSettings reads the connection settings from dir. A missing file
// yields the defaults.
func LoadSettings(dir string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(dir, SettingsFileName))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
