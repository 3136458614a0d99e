package ports

import "context"

// UnknownMonitor is shown when the focused monitor cannot be determined
const UnknownMonitor = "Unknown"

// MonitorQuerier reports the name of the focused display
type MonitorQuerier interface {
	// ActiveMonitor returns the focused monitor name, or UnknownMonitor on any failure
	ActiveMonitor(ctx context.Context) string
}
