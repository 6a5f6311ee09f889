package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/confetti/parameter"
	"github.com/lixenwraith/confetti/parameter/visual"
	"github.com/lixenwraith/confetti/terminal"
)

// Config holds all confetti configuration
type Config struct {
	Confetti ConfettiConfig `yaml:"confetti"`
	Render   RenderConfig   `yaml:"render"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ConfettiConfig configures one celebration
type ConfettiConfig struct {
	Duration string   `yaml:"duration"` // Go duration, e.g. "3s"; <= 0 shows nothing
	Count    int      `yaml:"count"`    // Particles per batch; <= 0 shows nothing
	Palette  []string `yaml:"palette"`  // "#rrggbb" entries
	Message  string   `yaml:"message"`  // Host content shown under the overlay
}

// RenderConfig configures the terminal output
type RenderConfig struct {
	FPS       int    `yaml:"fps"`
	ColorMode string `yaml:"color_mode"` // auto, 256, truecolor
}

// AudioConfig configures the celebration chime
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // [0,1]
}

// LoggingConfig configures logging
// The terminal is owned by the renderer, so logs only go to File
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	File        string `yaml:"file"`
	Development bool   `yaml:"development"`
}

// Color mode names accepted in RenderConfig.ColorMode
const (
	ColorModeAuto      = "auto"
	ColorMode256       = "256"
	ColorModeTrueColor = "truecolor"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	palette := make([]string, 0, len(visual.ConfettiPalette))
	for _, c := range visual.ConfettiPalette {
		palette = append(palette, FormatHex(c))
	}

	return &Config{
		Confetti: ConfettiConfig{
			Duration: parameter.ConfettiDuration.String(),
			Count:    parameter.ConfettiCount,
			Palette:  palette,
			Message:  parameter.DefaultMessage,
		},
		Render: RenderConfig{
			FPS:       parameter.DefaultFrameRate,
			ColorMode: ColorModeAuto,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  parameter.AudioDefaultVolume,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".confetti", "config.yaml")
	}
	return filepath.Join(dir, "confetti", "config.yaml")
}

// Load loads configuration from a YAML file
// A missing file or empty path yields defaults; environment overrides apply in both cases
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides
// CONFETTI_DURATION accepts a Go duration or a bare millisecond count
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CONFETTI_DURATION"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			v = (time.Duration(ms) * time.Millisecond).String()
		}
		c.Confetti.Duration = v
	}
	if v := os.Getenv("CONFETTI_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CONFETTI_COUNT %q: %w", v, err)
		}
		c.Confetti.Count = n
	}
	if v := os.Getenv("CONFETTI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CONFETTI_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks that every field can be used as configured
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Confetti.Duration); err != nil {
		return fmt.Errorf("invalid confetti duration %q: %w", c.Confetti.Duration, err)
	}
	if _, err := c.PaletteRGB(); err != nil {
		return err
	}
	if c.Render.FPS < parameter.FrameRateMin || c.Render.FPS > parameter.FrameRateMax {
		return fmt.Errorf("invalid fps %d (valid: %d-%d)", c.Render.FPS, parameter.FrameRateMin, parameter.FrameRateMax)
	}
	switch c.Render.ColorMode {
	case ColorModeAuto, ColorMode256, ColorModeTrueColor:
	default:
		return fmt.Errorf("invalid color mode: %s (valid: auto, 256, truecolor)", c.Render.ColorMode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("invalid audio volume %v (valid: 0-1)", c.Audio.Volume)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// GetDuration returns the parsed celebration duration, the default if unparsable
func (c *Config) GetDuration() time.Duration {
	d, err := time.ParseDuration(c.Confetti.Duration)
	if err != nil {
		return parameter.ConfettiDuration
	}
	return d
}

// GetFrameInterval returns the frame period for the configured FPS
func (c *Config) GetFrameInterval() time.Duration {
	fps := min(max(c.Render.FPS, parameter.FrameRateMin), parameter.FrameRateMax)
	return time.Second / time.Duration(fps)
}

// GetColorMode resolves the configured color mode, detecting from the environment for auto
func (c *Config) GetColorMode() terminal.ColorMode {
	switch c.Render.ColorMode {
	case ColorMode256:
		return terminal.ColorMode256
	case ColorModeTrueColor:
		return terminal.ColorModeTrueColor
	default:
		return terminal.DetectColorMode()
	}
}

// PaletteRGB parses the palette; an empty palette yields nil so callers fall back to the default
// A non-empty palette must have exactly as many colors as the default one
func (c *Config) PaletteRGB() ([]terminal.RGB, error) {
	if len(c.Confetti.Palette) == 0 {
		return nil, nil
	}
	if want := len(visual.ConfettiPalette); len(c.Confetti.Palette) != want {
		return nil, fmt.Errorf("invalid palette: %d colors, want %d", len(c.Confetti.Palette), want)
	}
	out := make([]terminal.RGB, 0, len(c.Confetti.Palette))
	for _, s := range c.Confetti.Palette {
		rgb, err := ParseHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, rgb)
	}
	return out, nil
}

// ParseHex parses "#rrggbb" (leading # optional)
func ParseHex(s string) (terminal.RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return terminal.RGB{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return terminal.RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return terminal.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FormatHex formats a color as "#rrggbb"
func FormatHex(c terminal.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
