package flags

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sporthub/sporthub/internal/log"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		want     bool
	}{
		{"switched on", New(map[string]bool{FlagPlainReplies: true}), FlagPlainReplies, true},
		{"switched off", New(map[string]bool{FlagPlainReplies: false}), FlagPlainReplies, false},
		{"absent from config", New(map[string]bool{"other": true}), FlagPlainReplies, false},
		{"nil config map", New(nil), FlagPlainReplies, false},
		{"nil registry", nil, FlagPlainReplies, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_EnabledNamesSorted(t *testing.T) {
	r := New(map[string]bool{"zeta": true, FlagPlainReplies: true, "alpha": false})
	require.Equal(t, []string{FlagPlainReplies, "zeta"}, r.EnabledNames())
	require.Nil(t, (*Registry)(nil).EnabledNames())
}

func TestRegistry_IgnoresLaterChangesToSource(t *testing.T) {
	src := map[string]bool{FlagPlainReplies: true}
	r := New(src)
	src[FlagPlainReplies] = false
	require.True(t, r.Enabled(FlagPlainReplies))
}

func TestNew_WarnsOnUnknownFlag(t *testing.T) {
	log.InitWriter(io.Discard, 10)

	New(map[string]bool{"plain-reply": true})

	var found bool
	for _, e := range log.GetRecentLogs(0) {
		if e.Level == log.LevelWarn && strings.Contains(e.Line, "flag=plain-reply") {
			found = true
		}
	}
	require.True(t, found, "typo in a flag name should be logged")
}

func TestKnown_HasDescriptions(t *testing.T) {
	for name, desc := range Known {
		require.NotEmpty(t, desc, name)
	}
}
