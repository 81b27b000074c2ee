package imgui

import "github.com/wippyai/imgui-bridge/native"

// Config configures a new context.
type Config struct {
	// DisplaySize seeds IO.DisplaySize.
	DisplaySize native.Vec2 `yaml:"display_size"`

	// IniFilename seeds IO.IniFilename. Empty disables the settings file.
	IniFilename string `yaml:"ini_filename"`

	// FontSize is the pixel height of the default font.
	FontSize float32 `yaml:"font_size"`

	// DarkTheme selects the dark palette, otherwise the light one.
	DarkTheme bool `yaml:"dark_theme"`
}

// DefaultConfig returns a 1280x720 display with the dark theme.
func DefaultConfig() Config {
	return Config{
		DisplaySize: native.Vec2{X: 1280, Y: 720},
		FontSize:    13,
		DarkTheme:   true,
	}
}
