// Package flags reads boolean feature switches from the `flags:` section of
// the config file.
package flags

import (
	"slices"

	"github.com/sporthub/sporthub/internal/log"
)

// FlagPlainReplies shows assistant replies as wrapped text instead of
// rendered Markdown.
const FlagPlainReplies = "plain-replies"

// Known lists every flag the client understands, with the text shown in the
// default config template.
var Known = map[string]string{
	FlagPlainReplies: "show assistant replies as plain text instead of Markdown",
}

// Registry is the set of flags loaded at startup. It is never mutated, so a
// reload builds a new one.
type Registry struct {
	values map[string]bool
}

// New builds a registry from the config map. Names not in Known are kept
// but logged, since they are usually typos.
func New(values map[string]bool) *Registry {
	r := &Registry{values: make(map[string]bool, len(values))}
	for name, on := range values {
		if _, ok := Known[name]; !ok {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		r.values[name] = on
	}
	log.Debug(log.CatConfig, "Feature flags loaded", "enabled", r.EnabledNames())
	return r
}

// Enabled reports whether name is switched on. Unset flags, and any flag
// on a nil registry, are off.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	return r.values[name]
}

// EnabledNames returns the switched-on flags in name order.
func (r *Registry) EnabledNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	for name, on := range r.values {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
