package hyprctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/logging"
	"github.com/hyprhelp/hyprhelp/internal/ports"
)

const (
	// DefaultBinary is where Hyprland installs its control tool
	DefaultBinary = "/usr/bin/hyprctl"
	// DefaultTimeout bounds the monitor query
	DefaultTimeout = 2 * time.Second
)

// commandRunner executes a command and returns its stdout.
// Overridden in tests.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// MonitorQuerier asks hyprctl for the focused monitor
type MonitorQuerier struct {
	binary  string
	run     commandRunner
	timeout time.Duration
}

// Compile-time interface verification
var _ ports.MonitorQuerier = (*MonitorQuerier)(nil)

// NewMonitorQuerier creates a querier for the given hyprctl binary.
// Empty binary or non-positive timeout select the defaults.
func NewMonitorQuerier(binary string, timeout time.Duration) *MonitorQuerier {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &MonitorQuerier{
		binary:  binary,
		run:     runCommand,
		timeout: timeout,
	}
}

// ActiveMonitor returns the focused monitor name, or ports.UnknownMonitor on failure
func (q *MonitorQuerier) ActiveMonitor(ctx context.Context) string {
	name, err := q.FocusedMonitor(ctx)
	if err != nil {
		logging.Logger.Debug("Monitor query failed", "binary", q.binary, "error", err)
		return ports.UnknownMonitor
	}
	return name
}

// FocusedMonitor runs `hyprctl -j monitors` and returns the first focused entry's name
func (q *MonitorQuerier) FocusedMonitor(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	output, err := q.run(ctx, q.binary, "-j", "monitors")
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: hyprctl timed out after %s", domain.ErrMonitorUnavailable, q.timeout)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrMonitorUnavailable, err)
	}

	return parseFocusedMonitor(output)
}

// parseFocusedMonitor extracts the focused monitor name from hyprctl JSON output
func parseFocusedMonitor(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: malformed monitor JSON", domain.ErrMonitorUnavailable)
	}
	monitors := gjson.ParseBytes(data)
	if !monitors.IsArray() {
		return "", fmt.Errorf("%w: expected a JSON array of monitors", domain.ErrMonitorUnavailable)
	}

	var name string
	found := false
	monitors.ForEach(func(_, m gjson.Result) bool {
		if !m.Get("focused").Bool() {
			return true
		}
		found = true
		name = m.Get("name").String()
		return false
	})

	if !found {
		return "", fmt.Errorf("%w: no focused monitor", domain.ErrMonitorUnavailable)
	}
	if name == "" {
		return ports.UnknownMonitor, nil
	}
	return name, nil
}
