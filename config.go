package thin

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional TOML configuration of a thin program:
//
//	fps = 60
//	gamepads = true
//	gamepad_mappings = "gamecontrollerdb.txt"
//	verbose = false
//
//	[window]
//	title = "demo"
//	width = 1280
//	height = 720
//	theme = "dark"
//	buttons = ["close", "minimize"]
type Config struct {
	Window          WindowConfig `toml:"window"`
	FPS             int          `toml:"fps"`
	Gamepads        bool         `toml:"gamepads"`
	GamepadMappings string       `toml:"gamepad_mappings"`
	Verbose         bool         `toml:"verbose"`
}

// WindowConfig overrides DefaultWindowAttributes. Unset fields keep their
// defaults.
type WindowConfig struct {
	Title       string   `toml:"title"`
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	Resizable   *bool    `toml:"resizable"`
	Buttons     []string `toml:"buttons"`
	Fullscreen  bool     `toml:"fullscreen"`
	Maximized   bool     `toml:"maximized"`
	Visible     *bool    `toml:"visible"`
	Decorated   *bool    `toml:"decorated"`
	Theme       string   `toml:"theme"`
	Position    []int    `toml:"position"`
	Transparent bool     `toml:"transparent"`
}

// LoadConfig reads a TOML config file. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	var c Config
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if _, err := c.WindowAttributes(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

// WindowAttributes applies the [window] table to DefaultWindowAttributes.
func (c Config) WindowAttributes() (WindowAttributes, error) {
	w := c.Window
	a := DefaultWindowAttributes()
	if w.Title != "" {
		a.Title = w.Title
	}
	if w.Width > 0 {
		a.Width = w.Width
	}
	if w.Height > 0 {
		a.Height = w.Height
	}
	if w.Resizable != nil {
		a.Resizable = *w.Resizable
	}
	if w.Visible != nil {
		a.Visible = *w.Visible
	}
	if w.Decorated != nil {
		a.Decorated = *w.Decorated
	}
	a.Fullscreen = w.Fullscreen
	a.Maximized = w.Maximized
	a.Transparent = w.Transparent

	if w.Buttons != nil {
		a.Buttons = 0
		for _, name := range w.Buttons {
			switch strings.ToLower(name) {
			case "close":
				a.Buttons |= WindowButtonClose
			case "minimize":
				a.Buttons |= WindowButtonMinimize
			case "maximize":
				a.Buttons |= WindowButtonMaximize
			default:
				return WindowAttributes{}, fmt.Errorf("unknown window button %q", name)
			}
		}
	}

	switch strings.ToLower(w.Theme) {
	case "", "system":
		a.Theme = ThemeSystem
	case "light":
		a.Theme = ThemeLight
	case "dark":
		a.Theme = ThemeDark
	default:
		return WindowAttributes{}, fmt.Errorf("unknown theme %q", w.Theme)
	}

	switch len(w.Position) {
	case 0:
	case 2:
		a = a.WithPosition(w.Position[0], w.Position[1])
	default:
		return WindowAttributes{}, fmt.Errorf("window position needs 2 values, got %d", len(w.Position))
	}
	return a, nil
}

// Settings returns settings throttled to the configured fps. Gamepads are
// left unset; install them with Settings.UseGamepads.
func (c Config) Settings() Settings {
	return SettingsFromFPS(c.FPS)
}
