package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDotEnv_ProcessEnvWins(t *testing.T) {
	path := writeEnv(t, "PORTAL_TEST_A=file\nPORTAL_TEST_B=file\n")
	t.Setenv("ENV_PATH", "")
	t.Setenv("PORTAL_TEST_A", "process")
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_TEST_B") })

	require.NoError(t, LoadDotEnv("local", path))

	assert.Equal(t, "process", os.Getenv("PORTAL_TEST_A"))
	assert.Equal(t, "file", os.Getenv("PORTAL_TEST_B"))
}

func TestLoadDotEnv_EnvPathOverridesDefaults(t *testing.T) {
	path := writeEnv(t, "PORTAL_TEST_C=override\n")
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_TEST_C") })

	require.NoError(t, LoadDotEnv("local", "does/not/exist.env"))
	assert.Equal(t, "override", os.Getenv("PORTAL_TEST_C"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}
