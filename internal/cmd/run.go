package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/hyprhelp/hyprhelp/internal/adapters/instance"
	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/hyprconf"
	"github.com/hyprhelp/hyprhelp/internal/keymap"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/paths"
	"github.com/hyprhelp/hyprhelp/internal/ports"
	"github.com/hyprhelp/hyprhelp/internal/ui"
)

// RunCmd starts the overlay TUI
type RunCmd struct {
	LockFile string `help:"Single-instance lock file" default:"/tmp/hyprhelp.lock"`
}

// Run acquires the instance lock, loads the key map and monitor name, and
// runs the overlay until it is cancelled. A held lock surfaces as
// domain.ErrAlreadyRunning so main can exit quietly.
func (r *RunCmd) Run(cli *CLI) error {
	lockPath := r.LockFile
	if lockPath == "" {
		lockPath = paths.LockFile
	}
	var lock ports.InstanceLock = instance.NewFileLock(lockPath)
	if err := lock.Acquire(); err != nil {
		logging.Logger.Info("Instance lock not acquired", "path", lockPath, "error", err)
		return err
	}
	defer lock.Release()

	palette, err := cli.Palette()
	if err != nil {
		return err
	}

	km, monitor := loadStartup(context.Background(), cli.ConfigPath(), cli.ParserOptions(), cli.MonitorQuerier())

	logging.Logger.Info("Starting overlay", "monitor", monitor, "bindings", km.Len())
	p := tea.NewProgram(
		ui.NewModel(ui.Options{
			KeyMap:  km,
			Monitor: monitor,
			Palette: &palette,
			Version: cli.appVersion,
		}),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Overlay closed")
	return nil
}

// loadStartup reads the key map and queries the monitor concurrently.
// Neither can fail: both degrade to defaults.
func loadStartup(ctx context.Context, configPath string, opts hyprconf.Options, monitors ports.MonitorQuerier) (*domain.KeyMap, string) {
	var (
		km      *domain.KeyMap
		monitor string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		km = keymap.Load(configPath, opts)
		return nil
	})
	g.Go(func() error {
		monitor = monitors.ActiveMonitor(gctx)
		return nil
	})
	_ = g.Wait()

	return km, monitor
}

// IsAlreadyRunning reports whether err means another overlay holds the lock
func IsAlreadyRunning(err error) bool {
	return errors.Is(err, domain.ErrAlreadyRunning)
}
