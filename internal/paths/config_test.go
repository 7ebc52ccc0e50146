package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	require.Empty(t, ResolveConfigFile(""), "nothing to load")
	require.Equal(t, "custom.yaml", ResolveConfigFile("custom.yaml"), "explicit path wins even if missing")

	userFile := filepath.Join(home, ".config", "textdiff", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(userFile), 0o750))
	require.NoError(t, os.WriteFile(userFile, []byte("diff: {}\n"), 0o600))
	require.Equal(t, userFile, ResolveConfigFile(""))

	require.NoError(t, os.MkdirAll(".textdiff", 0o750))
	require.NoError(t, os.WriteFile(ProjectConfigFile(), []byte("diff: {}\n"), 0o600))
	require.Equal(t, ProjectConfigFile(), ResolveConfigFile(""), "project config shadows user config")
}

func TestResolveConfigFile_IgnoresDirectories(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(ProjectConfigFile(), 0o750))
	require.Empty(t, ResolveConfigFile(""))
}

func TestUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.Equal(t, filepath.Join(home, ".config", "textdiff"), UserConfigDir())
	require.Equal(t, filepath.Join(home, ".config", "textdiff", "config.yaml"), UserConfigFile())
}
