package keymap

import "github.com/hyprhelp/hyprhelp/internal/domain"

// FallbackModifier is reported instead of a real modifier when the built-in
// defaults are shown because the config yielded no bindings
const FallbackModifier = "SUPER (defaults)"

// defaultBindings is the built-in help shown when no config bindings are found
var defaultBindings = []domain.Binding{
	{Key: "Q", Title: "Workspace 1", Description: "Switch to workspace 1"},
	{Key: "W", Title: "Workspace 2", Description: "Switch to workspace 2"},
	{Key: "E", Title: "Workspace 3", Description: "Switch to workspace 3"},
	{Key: "R", Title: "Reload", Description: "Reload Hyprland configuration"},
	{Key: "T", Title: "Workspace 4", Description: "Switch to workspace 4"},
	{Key: "Y", Title: "Workspace 5", Description: "Switch to workspace 5"},
	{Key: "U", Title: "Focus Last", Description: "Focus the previously active window"},
	{Key: "I", Title: "Split Ratio", Description: "Adjust the split ratio of windows"},
	{Key: "O", Title: "Editor", Description: "Launch code editor (VS Code)"},
	{Key: "P", Title: "Pseudo", Description: "Toggle pseudo-tiling mode"},
	{Key: "A", Title: "Browser", Description: "Launch web browser (Firefox)"},
	{Key: "S", Title: "Files", Description: "Open file manager"},
	{Key: "D", Title: "Discord", Description: "Launch Discord"},
	{Key: "F", Title: "Fullscreen", Description: "Toggle fullscreen mode"},
	{Key: "G", Title: "Spotify", Description: "Launch music player"},
	{Key: "H", Title: "Help", Description: "Show this keybind helper"},
	{Key: "J", Title: "Orientation", Description: "Toggle split orientation"},
	{Key: "K", Title: "Notepad", Description: "Launch text editor"},
	{Key: "L", Title: "Lock Screen", Description: "Lock the session"},
	{Key: "Z", Title: "Terminal", Description: "Launch terminal emulator"},
	{Key: "X", Title: "Kill", Description: "Close the active window"},
	{Key: "C", Title: "Launcher", Description: "Open application launcher (Rofi)"},
	{Key: "V", Title: "Float", Description: "Toggle floating mode"},
	{Key: "B", Title: "Waybar", Description: "Toggle status bar visibility"},
	{Key: "N", Title: "Notifications", Description: "Open notification center"},
	{Key: "M", Title: "Mute", Description: "Toggle system audio mute"},
}

// Defaults returns a fresh copy of the built-in key map
func Defaults() *domain.KeyMap {
	km := domain.NewKeyMap(FallbackModifier)
	for _, b := range defaultBindings {
		km.Set(b)
	}
	return km
}
