package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/hyprhelp/hyprhelp/internal/adapters/hyprctl"
	"github.com/hyprhelp/hyprhelp/internal/config"
	"github.com/hyprhelp/hyprhelp/internal/hyprconf"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/paths"
	"github.com/hyprhelp/hyprhelp/internal/theme"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Config      string           `help:"Hyprland config to read bindings from (default: ~/.config/hypr/hyprland.conf)" short:"c"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"50"`
	ModAlias    string           `help:"Variable holding the main modifier, without '$'" default:"mainMod"`
	Modifier    string           `help:"Modifier assumed until the alias is declared" default:"SUPER"`

	Run     RunCmd     `cmd:"" help:"Open the keybinding overlay (default)" default:"1"`
	Keys    KeysCmd    `cmd:"keys" help:"Print the key map the overlay would show"`
	Monitor MonitorCmd `cmd:"monitor" help:"Print the focused monitor name"`

	appVersion string           `kong:"-"`
	settings   *config.Settings `kong:"-"`
}

// SetVersion sets the version shown in the overlay footer
func (c *CLI) SetVersion(version string) {
	c.appVersion = version
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply applies settings.json below flags and env vars, then
// initializes logging
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("HYPRHELP_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("HYPRHELP_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}
	return nil
}

// ConfigPath resolves the Hyprland config path: flag > env > settings > default
func (c *CLI) ConfigPath() string {
	if c.Config != "" {
		return paths.ExpandPath(c.Config)
	}
	if env := os.Getenv("HYPRHELP_CONFIG"); env != "" {
		return paths.ExpandPath(env)
	}
	if c.settings != nil && c.settings.ConfigPath != "" {
		return c.settings.ConfigPath
	}
	return paths.GetHyprlandConfigPath()
}

// ParserOptions resolves the modifier alias and default modifier
func (c *CLI) ParserOptions() hyprconf.Options {
	opts := hyprconf.Options{
		DefaultModifier: c.Modifier,
		ModifierAlias:   c.ModAlias,
	}
	if c.settings != nil {
		if c.ModAlias == hyprconf.DefaultModifierAlias && c.settings.ModifierAlias != "" {
			opts.ModifierAlias = c.settings.ModifierAlias
		}
		if c.Modifier == hyprconf.DefaultModifier && c.settings.DefaultModifier != "" {
			opts.DefaultModifier = c.settings.DefaultModifier
		}
	}
	return opts
}

// MonitorQuerier builds the hyprctl adapter from settings
func (c *CLI) MonitorQuerier() *hyprctl.MonitorQuerier {
	binary := ""
	timeout := hyprctl.DefaultTimeout
	if c.settings != nil {
		binary = c.settings.HyprctlPath
		if c.settings.MonitorTimeoutMs != nil {
			timeout = time.Duration(*c.settings.MonitorTimeoutMs) * time.Millisecond
		}
	}
	return hyprctl.NewMonitorQuerier(binary, timeout)
}

// Palette applies settings color overrides to the default palette
func (c *CLI) Palette() (theme.Palette, error) {
	p := theme.DefaultPalette()
	if c.settings == nil || len(c.settings.Colors) == 0 {
		return p, nil
	}
	p, err := p.WithOverrides(c.settings.Colors)
	if err != nil {
		return p, fmt.Errorf("invalid colors in settings.json: %w", err)
	}
	return p, nil
}
