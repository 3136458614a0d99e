package hyprctl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/ports"
)

func fakeRunner(output string, err error) commandRunner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(output), err
	}
}

func TestParseFocusedMonitor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr bool
	}{
		{"single focused", `[{"name":"DP-1","focused":true}]`, "DP-1", false},
		{"second focused", `[{"name":"DP-1","focused":false},{"name":"HDMI-A-1","focused":true}]`, "HDMI-A-1", false},
		{"first of two focused", `[{"name":"A","focused":true},{"name":"B","focused":true}]`, "A", false},
		{"focused without name", `[{"focused":true}]`, ports.UnknownMonitor, false},
		{"none focused", `[{"name":"DP-1","focused":false}]`, "", true},
		{"missing focused field", `[{"name":"DP-1"}]`, "", true},
		{"empty array", `[]`, "", true},
		{"object instead of array", `{"name":"DP-1"}`, "", true},
		{"malformed", `[{"name":`, "", true},
		{"empty output", ``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := parseFocusedMonitor([]byte(tt.input))
			if tt.expectedErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrMonitorUnavailable))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestActiveMonitor_Success(t *testing.T) {
	q := NewMonitorQuerier("", 0)
	var gotName string
	var gotArgs []string
	q.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte(`[{"name":"eDP-1","focused":true}]`), nil
	}

	assert.Equal(t, "eDP-1", q.ActiveMonitor(context.Background()))
	assert.Equal(t, DefaultBinary, gotName)
	assert.Equal(t, []string{"-j", "monitors"}, gotArgs)
}

func TestActiveMonitor_CommandFailure(t *testing.T) {
	q := NewMonitorQuerier("hyprctl", time.Second)
	q.run = fakeRunner(`[{"name":"eDP-1","focused":true}]`, errors.New("exit status 1"))

	assert.Equal(t, ports.UnknownMonitor, q.ActiveMonitor(context.Background()))
}

func TestActiveMonitor_MissingBinary(t *testing.T) {
	q := NewMonitorQuerier("/nonexistent/hyprctl", time.Second)

	assert.Equal(t, ports.UnknownMonitor, q.ActiveMonitor(context.Background()))
}

func TestFocusedMonitor_Timeout(t *testing.T) {
	q := NewMonitorQuerier("hyprctl", 10*time.Millisecond)
	q.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	_, err := q.FocusedMonitor(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMonitorUnavailable)
	assert.Contains(t, err.Error(), "timed out")
}
