package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_ReadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env.local"), []byte("HRCONSOLE_TEST_ENV_LOAD=ok\n"), 0o644))

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	_ = os.Unsetenv("HRCONSOLE_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "ok", os.Getenv("HRCONSOLE_TEST_ENV_LOAD"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestConfiguration_Defaults(t *testing.T) {
	c := &Configuration{}
	require.NoError(t, env.Parse(c))

	require.Equal(t, 15, c.PageSize)
	require.Equal(t, 4, c.SSNVisibleDigits)
	require.Equal(t, "error", c.LogLevel)
	require.NotEmpty(t, c.Directory.BaseURL)
	require.Positive(t, c.Directory.Timeout)
	require.Contains(t, c.Rosters.Clients, "3M Library Systems")
	require.Len(t, c.Rosters.PayGroups, 3)
}

func TestDirectoryOptions_Validate(t *testing.T) {
	d := DirectoryOptions{BaseURL: "", Timeout: 0}
	require.Error(t, d.Validate())

	d = DirectoryOptions{BaseURL: "http://localhost:4010/api/v1", Timeout: 1}
	require.NoError(t, d.Validate())
}
