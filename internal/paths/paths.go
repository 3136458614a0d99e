package paths

import (
	"os"
	"path/filepath"
)

const (
	// LockFile guards against a second overlay instance
	LockFile = "/tmp/hyprhelp.lock"
	// CrashLogFile receives the trace of a fatal error
	CrashLogFile = "/tmp/hyprhelp.log"
)

// GetHyprhelpHome returns HYPRHELP_HOME or ~/.config/hyprhelp
func GetHyprhelpHome() string {
	home := os.Getenv("HYPRHELP_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".hyprhelp"
		}
		return filepath.Join(homeDir, ".config", "hyprhelp")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $HYPRHELP_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHyprhelpHome(), "settings.json")
}

// GetHyprlandConfigPath returns the default Hyprland config location,
// honouring XDG_CONFIG_HOME
func GetHyprlandConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		return ExpandPath("~/.config/hypr/hyprland.conf")
	}
	return filepath.Join(ExpandPath(configHome), "hypr", "hyprland.conf")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
