package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file looked up by LoadOptional.
const FileName = "canopy.yaml"

// Config represents the optional canopy.yaml configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	UI       UIConfig       `yaml:"ui"`
	Profiler ProfilerConfig `yaml:"profiler"`
	LogLevel string         `yaml:"log_level,omitempty"`
}

// WindowConfig contains window and swap chain settings.
type WindowConfig struct {
	Title      string     `yaml:"title,omitempty"`
	Width      int        `yaml:"width,omitempty"`
	Height     int        `yaml:"height,omitempty"`
	VSync      *bool      `yaml:"vsync,omitempty"`
	ClearColor [4]float32 `yaml:"clear_color,flow"`
}

// UIConfig contains settings for the UI controller and theme.
type UIConfig struct {
	TargetWidth  float64 `yaml:"target_width,omitempty"`
	TargetHeight float64 `yaml:"target_height,omitempty"`
	Theme        string  `yaml:"theme,omitempty"`
	TextSize     float64 `yaml:"text_size,omitempty"`
	Font         string  `yaml:"font,omitempty"`
	FontAtlasPx  float32 `yaml:"font_atlas_px,omitempty"`
}

// ProfilerConfig sizes the scope ring buffer of profiling builds.
type ProfilerConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	vsync := true
	return &Config{
		Window: WindowConfig{
			Title:      "canopy",
			Width:      1280,
			Height:     720,
			VSync:      &vsync,
			ClearColor: colors.DarkGray,
		},
		UI: UIConfig{
			TargetWidth:  1280,
			TargetHeight: 720,
			Theme:        "dark",
			TextSize:     32,
			FontAtlasPx:  48,
		},
		Profiler: ProfilerConfig{Capacity: 1 << 20},
		LogLevel: "info",
	}
}

// LoadOptional reads canopy.yaml from dir if present. Fields missing from the
// file keep their defaults.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.UI.TargetWidth < 0 || c.UI.TargetHeight < 0 {
		errs = append(errs, fmt.Errorf("ui target resolution must not be negative"))
	}
	if (c.UI.TargetWidth == 0) != (c.UI.TargetHeight == 0) {
		errs = append(errs, fmt.Errorf("ui target resolution needs both width and height"))
	}
	if c.UI.TextSize <= 0 {
		errs = append(errs, fmt.Errorf("ui text size must be positive, got %v", c.UI.TextSize))
	}
	if c.UI.FontAtlasPx <= 0 {
		errs = append(errs, fmt.Errorf("font atlas size must be positive, got %v", c.UI.FontAtlasPx))
	}
	switch strings.ToLower(c.UI.Theme) {
	case "dark", "light":
	default:
		errs = append(errs, fmt.Errorf("unknown ui theme %q (want dark or light)", c.UI.Theme))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid %s: %w", FileName, errors.Join(errs...))
	}
	return nil
}

// ToCore maps the window settings to the engine run configuration.
func (c *Config) ToCore() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync == nil || *c.Window.VSync,
		ClearColor: c.Window.ClearColor,
	}
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
