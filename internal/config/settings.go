package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyprhelp/hyprhelp/internal/paths"
)

// Settings represents the structure of $HYPRHELP_HOME/settings.json.
// Every field is optional; nil or empty means "use the default".
type Settings struct {
	Colors           map[string]string `json:"colors,omitempty"`
	ConfigPath       string            `json:"config_path,omitempty"`
	Debug            *bool             `json:"debug,omitempty"`
	DefaultModifier  string            `json:"default_modifier,omitempty"`
	HyprctlPath      string            `json:"hyprctl_path,omitempty"`
	MaxLogFiles      *int              `json:"max_log_files,omitempty"`
	ModifierAlias    string            `json:"modifier_alias,omitempty"`
	MonitorTimeoutMs *int              `json:"monitor_timeout_ms,omitempty"`
}

// LoadSettings loads settings from $HYPRHELP_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ConfigPath != "" {
		settings.ConfigPath = paths.ExpandPath(settings.ConfigPath)
	}
	if settings.HyprctlPath != "" {
		settings.HyprctlPath = paths.ExpandPath(settings.HyprctlPath)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// Validate checks value ranges that JSON decoding cannot
func (s *Settings) Validate() error {
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative")
	}
	if s.MonitorTimeoutMs != nil && *s.MonitorTimeoutMs <= 0 {
		return fmt.Errorf("monitor_timeout_ms must be positive")
	}
	return nil
}
