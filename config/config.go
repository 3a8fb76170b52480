// Package config loads picker settings from a TOML file.
//
// A missing file is not an error: Default() applies. Unknown keys are logged and
// ignored; out-of-range values are repaired by Normalize.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/hsv-picker/colormodel"
)

// AppName names the config directory and default log file
const AppName = "hsv-picker"

// Config is the top-level file layout
type Config struct {
	Picker     PickerConfig     `toml:"picker"`
	Theme      ThemeConfig      `toml:"theme"`
	Audio      AudioConfig      `toml:"audio"`
	Eyedropper EyedropperConfig `toml:"eyedropper"`
	Log        LogConfig        `toml:"log"`
}

// PickerConfig holds component defaults
type PickerConfig struct {
	// Format is the display format at startup: hex, rgb, hsl or hsv
	Format string `toml:"format"`
	// Initial is any parseable color string; empty mounts opaque white
	Initial string `toml:"initial"`
}

// ThemeConfig selects the chrome palette
type ThemeConfig struct {
	// Mode is auto, dark or light; auto asks the desktop
	Mode string `toml:"mode"`
}

// AudioConfig toggles feedback tones
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// EyedropperConfig names an external sampler program
type EyedropperConfig struct {
	Command   string   `toml:"command"`
	Args      []string `toml:"args"`
	TimeoutMS int      `toml:"timeout_ms"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Picker: PickerConfig{Format: "hex"},
		Theme:  ThemeConfig{Mode: ThemeAuto},
		Audio:  AudioConfig{Enabled: true},
		Eyedropper: EyedropperConfig{
			TimeoutMS: 30000,
		},
		Log: LogConfig{Level: "info", MaxSizeMB: 5},
	}
}

// Dir returns the per-user config directory
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file location
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults and normalizes the result
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String(), "path", path)
	}
	for _, w := range cfg.Normalize() {
		slog.Warn("config value repaired", "detail", w, "path", path)
	}
	return cfg, nil
}

// Normalize repairs invalid values in place and describes each repair
func (c *Config) Normalize() []string {
	var warnings []string
	def := Default()

	if _, ok := colormodel.ParseFormat(c.Picker.Format); !ok {
		warnings = append(warnings, fmt.Sprintf("picker.format %q is not hex/rgb/hsl/hsv", c.Picker.Format))
		c.Picker.Format = def.Picker.Format
	}
	c.Picker.Format = strings.ToLower(strings.TrimSpace(c.Picker.Format))

	if c.Picker.Initial != "" {
		if _, _, err := colormodel.Parse(colormodel.NormalizeHex(c.Picker.Initial)); err != nil {
			warnings = append(warnings, fmt.Sprintf("picker.initial %q is not a color", c.Picker.Initial))
			c.Picker.Initial = ""
		}
	}

	mode := strings.ToLower(strings.TrimSpace(c.Theme.Mode))
	switch mode {
	case ThemeAuto, ThemeDark, ThemeLight:
		c.Theme.Mode = mode
	default:
		warnings = append(warnings, fmt.Sprintf("theme.mode %q is not auto/dark/light", c.Theme.Mode))
		c.Theme.Mode = def.Theme.Mode
	}

	if c.Eyedropper.TimeoutMS <= 0 {
		c.Eyedropper.TimeoutMS = def.Eyedropper.TimeoutMS
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	return warnings
}

// Format returns the configured display format
func (c Config) Format() colormodel.Format {
	f, _ := colormodel.ParseFormat(c.Picker.Format)
	return f
}

// InitialColor returns the configured start color, false when none is set
func (c Config) InitialColor() (colormodel.Color, bool) {
	if c.Picker.Initial == "" {
		return colormodel.Color{}, false
	}
	col, _, err := colormodel.Parse(colormodel.NormalizeHex(c.Picker.Initial))
	if err != nil {
		return colormodel.Color{}, false
	}
	return col, true
}

// EyedropperTimeout returns the sampling timeout
func (c Config) EyedropperTimeout() time.Duration {
	return time.Duration(c.Eyedropper.TimeoutMS) * time.Millisecond
}

// LogPath returns the log file path, defaulting into the config directory
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName+".log")
}
