package domain

import "errors"

var (
	ErrAlreadyRunning     = errors.New("another instance is already running")
	ErrConfigUnreadable   = errors.New("config file unreadable")
	ErrMonitorUnavailable = errors.New("monitor information unavailable")
)
