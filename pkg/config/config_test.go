package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAILDELAY_HSP_USERNAME", "analyst@example.com")
	t.Setenv("RAILDELAY_HSP_PASSWORD", "hunter2")

	credentials, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "analyst@example.com", credentials.Username)
	assert.Equal(t, "hunter2", credentials.Password)
	assert.Equal(t, DefaultEndpoint, credentials.Endpoint)
}

func TestLoadMissingCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAILDELAY_HSP_USERNAME", "")
	t.Setenv("RAILDELAY_HSP_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("RAILDELAY_HSP_USERNAME", "")
	t.Setenv("RAILDELAY_HSP_PASSWORD", "")
	t.Setenv("RAILDELAY_HSP_ENDPOINT", "")

	file := []byte("username: file@example.com\npassword: filepass\nendpoint: https://hsp-test.example.com/api/v1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raildelay.yml"), file, 0644))

	credentials, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file@example.com", credentials.Username)
	assert.Equal(t, "filepass", credentials.Password)
	assert.Equal(t, "https://hsp-test.example.com/api/v1", credentials.Endpoint)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("RAILDELAY_HSP_USERNAME", "env@example.com")
	t.Setenv("RAILDELAY_HSP_PASSWORD", "envpass")
	t.Setenv("RAILDELAY_HSP_ENDPOINT", "")

	file := []byte("username: file@example.com\npassword: filepass\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raildelay.yml"), file, 0644))

	credentials, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env@example.com", credentials.Username)
	assert.Equal(t, "envpass", credentials.Password)
}
