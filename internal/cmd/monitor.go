package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hyprhelp/hyprhelp/internal/ports"
)

// MonitorCmd prints the focused monitor as the overlay footer would
type MonitorCmd struct {
	out io.Writer `kong:"-"`
}

// Run executes the monitor command
func (m *MonitorCmd) Run(cli *CLI) error {
	return m.print(context.Background(), cli.MonitorQuerier())
}

func (m *MonitorCmd) print(ctx context.Context, q ports.MonitorQuerier) error {
	out := m.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, q.ActiveMonitor(ctx))
	return err
}
