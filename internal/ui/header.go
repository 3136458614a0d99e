package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyprhelp/hyprhelp/internal/theme"
)

// AppTitle is shown at the top of the overlay
const AppTitle = "hyprhelp"

// renderHeader creates the app name line
func renderHeader(styles theme.Styles) string {
	return styles.AppName.Render(AppTitle)
}

// renderFooter shows the active display on the left and the version on the
// right, plus a notice when the built-in defaults are on screen
func renderFooter(styles theme.Styles, width int, monitor, version string, fallback bool) string {
	left := styles.Display.Render(fmt.Sprintf("Display: %s", monitor))
	if fallback {
		left += styles.Fallback.Render("  (no annotated binds found, showing defaults)")
	}
	right := styles.Version.Render(fmt.Sprintf("v%s", version))

	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(space).Render(""), right)
}
