package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders lets packages that derive styles from these colors
// refresh them after a theme change without an import cycle.
var styleRebuilders []func()

// RegisterStyleRebuilder adds fn to the calls made after ApplyTheme.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme resets colors to the default preset, layers the named preset
// and then the individual overrides on top, and rebuilds derived styles.
// Nothing is changed when the config is invalid.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != DefaultPreset.Name {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset %q (available: %s)",
				cfg.Preset, strings.Join(PresetNames(), ", "))
		}
		maps.Copy(colors, preset.Colors)
	}

	for _, key := range slices.Sorted(maps.Keys(cfg.Colors)) {
		value := cfg.Colors[key]
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	for _, t := range tokenTargets {
		hex, ok := colors[t.token]
		if !ok {
			continue
		}
		for _, target := range t.targets {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
	rebuildStyles()
	return nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// isValidHexColor accepts #RGB and #RRGGBB.
func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 32)
	return err == nil
}
