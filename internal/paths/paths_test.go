package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func linuxOnly(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only applies on linux")
	}
}

func TestAppDataDir(t *testing.T) {
	linuxOnly(t)
	cfg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfg)

	dir := AppDataDir()
	require.Equal(t, filepath.Join(cfg, "verbs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestAppLocalDataDir(t *testing.T) {
	linuxOnly(t)

	tests := []struct {
		name    string
		xdgData string
		want    func(home string) string
	}{
		{
			name:    "XDG_DATA_HOME set",
			xdgData: "/srv/data",
			want:    func(string) string { return "/srv/data/verbs" },
		},
		{
			name: "falls back to ~/.local/share",
			want: func(home string) string { return filepath.Join(home, ".local", "share", "verbs") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Setenv("XDG_DATA_HOME", tt.xdgData)

			require.Equal(t, tt.want(home), AppLocalDataDir())
		})
	}
}

func TestFilePaths(t *testing.T) {
	linuxOnly(t)
	home := t.TempDir()
	cfg := filepath.Join(home, ".config")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", cfg)
	t.Setenv("XDG_DATA_HOME", "")

	rc, err := ConfigFilePath()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "rc file", got: rc, want: filepath.Join(home, ".verbsrc")},
		{name: "log file", got: LogFilePath(), want: filepath.Join(cfg, "verbs", "verbs.log")},
		{name: "commands file", got: CommandsFilePath(), want: filepath.Join(cfg, "verbs", "commands.yaml")},
		{name: "env file", got: EnvFilePath(), want: filepath.Join(cfg, "verbs", ".env")},
		{name: "history db", got: HistoryDBPath(), want: filepath.Join(home, ".local", "share", "verbs", "history.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
			require.True(t, filepath.IsAbs(tt.got))
			require.Equal(t, filepath.Clean(tt.got), tt.got)
		})
	}
}

func TestAppDataDir_NoConfigDir(t *testing.T) {
	linuxOnly(t)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	require.Equal(t, ".", AppDataDir())
}
