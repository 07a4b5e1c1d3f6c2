package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSettings decodes YAML settings. Omitted fields keep their defaults.
func ParseSettings(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &s, nil
}

// LoadSettings reads machine settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}
	return ParseSettings(buf)
}
