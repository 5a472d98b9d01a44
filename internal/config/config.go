// Package config provides configuration types and defaults for sporthub.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/sporthub/sporthub/internal/log"
	"github.com/sporthub/sporthub/internal/paths"
	"github.com/sporthub/sporthub/internal/ui/slideover"
)

// Config holds all configuration options for sporthub.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Chat    ChatConfig    `mapstructure:"chat"`
	Logs    LogsConfig    `mapstructure:"logs"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Tracing TracingConfig `mapstructure:"tracing"`

	// Flags toggles optional features by name.
	Flags map[string]bool `mapstructure:"flags"`
}

// UIConfig holds settings shared by every slide-over panel.
type UIConfig struct {
	// UnitsPerCell is how many px one terminal column stands for. Panel
	// widths and breakpoints are expressed in px.
	UnitsPerCell  float64      `mapstructure:"units_per_cell"`
	FlickVelocity float64      `mapstructure:"flick_velocity"` // px/s
	Motion        MotionConfig `mapstructure:"motion"`
}

// MotionConfig tunes panel animations.
type MotionConfig struct {
	OpenStiffness float64       `mapstructure:"open_stiffness"`
	OpenDamping   float64       `mapstructure:"open_damping"`
	OpenMass      float64       `mapstructure:"open_mass"`
	SnapStiffness float64       `mapstructure:"snap_stiffness"`
	SnapDamping   float64       `mapstructure:"snap_damping"`
	SnapMass      float64       `mapstructure:"snap_mass"`
	CloseDuration time.Duration `mapstructure:"close_duration"`
	FPS           int           `mapstructure:"fps"`
}

// PanelConfig is the per-panel part of the slide-over contract.
type PanelConfig struct {
	Side           string  `mapstructure:"side"`            // "left" or "right"
	Width          string  `mapstructure:"width"`           // "450px", "40vw" or "30%"
	CloseThreshold float64 `mapstructure:"close_threshold"` // fraction of panel width, 0-1
}

// ChatConfig holds assistant settings.
type ChatConfig struct {
	Provider     string        `mapstructure:"provider"` // "openai" (default) or "static"
	Model        string        `mapstructure:"model"`
	BaseURL      string        `mapstructure:"base_url"` // any OpenAI-compatible endpoint
	APIKey       string        `mapstructure:"api_key"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SystemPrompt string        `mapstructure:"system_prompt"`
	Panel        PanelConfig   `mapstructure:"panel"`
}

// LogsConfig holds debug log panel settings.
type LogsConfig struct {
	BufferSize int         `mapstructure:"buffer_size"`
	Panel      PanelConfig `mapstructure:"panel"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Nested YAML and quoted dot
	// notation ("text.primary") are both accepted.
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds distributed tracing configuration for assistant requests.
type TracingConfig struct {
	// Enabled controls whether tracing is active. Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend: "none", "file", "stdout", "otlp".
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns ~/.config/sporthub/traces/traces.jsonl or
// an empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	return paths.TracesFile()
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			UnitsPerCell:  slideover.DefaultUnitsPerCell,
			FlickVelocity: slideover.DefaultFlickVelocity,
			Motion: MotionConfig{
				OpenStiffness: 300,
				OpenDamping:   30,
				OpenMass:      1,
				SnapStiffness: 500,
				SnapDamping:   40,
				SnapMass:      1,
				CloseDuration: 250 * time.Millisecond,
				FPS:           slideover.DefaultFPS,
			},
		},
		Chat: ChatConfig{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Timeout:      60 * time.Second,
			SystemPrompt: "You are the SportHub assistant. Help players find, create and organise matches. Keep answers short.",
			Panel: PanelConfig{
				Side:           "left",
				Width:          "450px",
				CloseThreshold: slideover.DefaultCloseThreshold,
			},
		},
		Logs: LogsConfig{
			BufferSize: log.DefaultBufferSize,
			Panel: PanelConfig{
				Side:           "right",
				Width:          "40vw",
				CloseThreshold: slideover.DefaultCloseThreshold,
			},
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// SetDefaults registers Defaults() on v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("ui.units_per_cell", d.UI.UnitsPerCell)
	v.SetDefault("ui.flick_velocity", d.UI.FlickVelocity)
	v.SetDefault("ui.motion.open_stiffness", d.UI.Motion.OpenStiffness)
	v.SetDefault("ui.motion.open_damping", d.UI.Motion.OpenDamping)
	v.SetDefault("ui.motion.open_mass", d.UI.Motion.OpenMass)
	v.SetDefault("ui.motion.snap_stiffness", d.UI.Motion.SnapStiffness)
	v.SetDefault("ui.motion.snap_damping", d.UI.Motion.SnapDamping)
	v.SetDefault("ui.motion.snap_mass", d.UI.Motion.SnapMass)
	v.SetDefault("ui.motion.close_duration", d.UI.Motion.CloseDuration)
	v.SetDefault("ui.motion.fps", d.UI.Motion.FPS)

	v.SetDefault("chat.provider", d.Chat.Provider)
	v.SetDefault("chat.model", d.Chat.Model)
	v.SetDefault("chat.timeout", d.Chat.Timeout)
	v.SetDefault("chat.system_prompt", d.Chat.SystemPrompt)
	v.SetDefault("chat.panel.side", d.Chat.Panel.Side)
	v.SetDefault("chat.panel.width", d.Chat.Panel.Width)
	v.SetDefault("chat.panel.close_threshold", d.Chat.Panel.CloseThreshold)

	v.SetDefault("logs.buffer_size", d.Logs.BufferSize)
	v.SetDefault("logs.panel.side", d.Logs.Panel.Side)
	v.SetDefault("logs.panel.width", d.Logs.Panel.Width)
	v.SetDefault("logs.panel.close_threshold", d.Logs.Panel.CloseThreshold)

	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// Load reads the config file at path on top of Defaults().
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Slideover builds the panel configuration from a panel section and the
// shared UI settings.
func (p PanelConfig) Slideover(ui UIConfig) (slideover.Config, error) {
	side, err := slideover.ParseSide(p.Side)
	if err != nil {
		return slideover.Config{}, err
	}
	m := ui.Motion
	return slideover.Config{
		Side:           side,
		Width:          slideover.ParseLength(p.Width),
		CloseThreshold: slideover.Threshold(p.CloseThreshold),
		FlickVelocity:  ui.FlickVelocity,
		UnitsPerCell:   ui.UnitsPerCell,
		Motion: slideover.MotionConfig{
			Open:          slideover.Spring{Stiffness: m.OpenStiffness, Damping: m.OpenDamping, Mass: m.OpenMass},
			SnapBack:      slideover.Spring{Stiffness: m.SnapStiffness, Damping: m.SnapDamping, Mass: m.SnapMass},
			CloseDuration: m.CloseDuration,
			FPS:           m.FPS,
		},
	}, nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	return errors.Join(
		ValidateUI(c.UI),
		ValidatePanel("chat.panel", c.Chat.Panel),
		ValidatePanel("logs.panel", c.Logs.Panel),
		ValidateChat(c.Chat),
		ValidateTracing(c.Tracing),
	)
}

// ValidateUI checks shared panel settings.
func ValidateUI(ui UIConfig) error {
	if ui.UnitsPerCell < 0 {
		return fmt.Errorf("ui.units_per_cell must not be negative, got %v", ui.UnitsPerCell)
	}
	if ui.FlickVelocity < 0 {
		return fmt.Errorf("ui.flick_velocity must not be negative, got %v", ui.FlickVelocity)
	}
	if ui.Motion.CloseDuration < 0 {
		return fmt.Errorf("ui.motion.close_duration must not be negative, got %v", ui.Motion.CloseDuration)
	}
	if ui.Motion.OpenMass < 0 || ui.Motion.SnapMass < 0 {
		return fmt.Errorf("ui.motion masses must not be negative, got open %v snap %v", ui.Motion.OpenMass, ui.Motion.SnapMass)
	}
	if ui.Motion.FPS < 0 || ui.Motion.FPS > 240 {
		return fmt.Errorf("ui.motion.fps must be between 0 and 240, got %d", ui.Motion.FPS)
	}
	return nil
}

// ValidatePanel checks one panel section. An unrecognised width unit is
// not an error: the panel falls back to a fixed width.
func ValidatePanel(name string, p PanelConfig) error {
	if _, err := slideover.ParseSide(p.Side); err != nil {
		return fmt.Errorf("%s.side: %w", name, err)
	}
	if p.CloseThreshold < 0 || p.CloseThreshold > 1 {
		return fmt.Errorf("%s.close_threshold must be between 0.0 and 1.0, got %v", name, p.CloseThreshold)
	}
	return nil
}

// ValidateChat checks assistant settings.
func ValidateChat(chat ChatConfig) error {
	switch chat.Provider {
	case "", "openai", "static":
	default:
		return fmt.Errorf("chat.provider must be \"openai\" or \"static\", got %q", chat.Provider)
	}
	if chat.Timeout < 0 {
		return fmt.Errorf("chat.timeout must not be negative, got %v", chat.Timeout)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# SportHub Configuration

# Settings shared by all slide-over panels.
# Widths are in px; one terminal column counts as units_per_cell px, so a
# 240 column terminal is a 1920px viewport.
ui:
  units_per_cell: 8
  flick_velocity: 800      # px/s release speed that dismisses a panel
  motion:
    open_stiffness: 300
    open_damping: 30
    open_mass: 1
    snap_stiffness: 500    # snap-back after a short drag
    snap_damping: 40
    snap_mass: 1
    close_duration: 250ms
    fps: 60

# Assistant chat (press "c" or click "Ask AI")
chat:
  provider: openai         # openai or static (offline canned replies)
  model: gpt-4o-mini
  # base_url: https://api.openai.com/v1   # any OpenAI-compatible endpoint
  # api_key: ""                           # set from the chat panel on first use
  timeout: 60s
  panel:
    side: left
    width: 450px           # desktop only; px, vw or %
    close_threshold: 0.3   # drag past 30% of the width to dismiss

# Debug log panel (--debug, toggle with ctrl+x)
logs:
  buffer_size: 500
  panel:
    side: right
    width: 40vw

# Theme configuration
theme:
  # preset: nord
  # mode: dark               # force dark or light; detected when unset
  #
  # Available presets:
  #   default           - Default sporthub theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# Feature flags
# flags:
#   plain-replies: true            # show replies as plain text, no Markdown

# Tracing of assistant requests
# tracing:
#   enabled: false                 # default: false
#   exporter: file                 # none, file, stdout, otlp (default: file)
#   file_path: ~/.config/sporthub/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
