package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("ui: {}\n"), 0o600))
}

func TestFindConfig(t *testing.T) {
	tests := []struct {
		name      string
		local     bool
		user      bool
		wantLocal bool
		wantFound bool
	}{
		{name: "local wins over user", local: true, user: true, wantLocal: true, wantFound: true},
		{name: "user fallback", user: true, wantFound: true},
		{name: "nothing", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd, home := t.TempDir(), t.TempDir()
			if tt.local {
				touch(t, LocalConfig(cwd))
			}
			if tt.user {
				touch(t, filepath.Join(UserConfigDir(home), "config.yaml"))
			}

			path, ok := FindConfig(cwd, home)
			require.Equal(t, tt.wantFound, ok)
			switch {
			case !tt.wantFound:
				require.Empty(t, path)
			case tt.wantLocal:
				require.Equal(t, LocalConfig(cwd), path)
			default:
				require.Equal(t, filepath.Join(home, ".config", "sporthub", "config.yaml"), path)
			}
		})
	}
}

func TestFindConfig_IgnoresDirectories(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(LocalConfig(cwd), 0o750))
	_, ok := FindConfig(cwd, "")
	require.False(t, ok)
}

func TestUserConfigDir_NoHome(t *testing.T) {
	require.Empty(t, UserConfigDir(""))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, "traces", "t.jsonl"), ExpandHome("~/traces/t.jsonl"))
	require.Equal(t, home, ExpandHome("~"))
	require.Equal(t, "/var/log/x", ExpandHome("/var/log/../log/x"))
	require.Equal(t, "~user/x", ExpandHome("~user/x"))
	require.Empty(t, ExpandHome(""))
}

func TestTracesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.Equal(t, filepath.Join(home, ".config", "sporthub", "traces", "traces.jsonl"), TracesFile())
}
