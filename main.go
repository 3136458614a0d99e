package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/hyprhelp/hyprhelp/internal/cmd"
	"github.com/hyprhelp/hyprhelp/internal/config"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/paths"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.1 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "1.0.1"
)

// Tagline is the application's tagline used in help text
const Tagline = "Keybinding cheat sheet for Hyprland"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("hyprhelp %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			logging.WriteCrash(paths.CrashLogFile, r, debug.Stack())
			os.Exit(1)
		}
	}()

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)
	cli.SetVersion(Version)
	ctx := kong.Parse(&cli,
		kong.Name("hyprhelp"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		if cmd.IsAlreadyRunning(err) {
			os.Exit(0)
		}
		logging.WriteCrash(paths.CrashLogFile, err, debug.Stack())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
