package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ASSESS_DB", "")
	t.Setenv("ASSESS_NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ASSESS_DB", "/tmp/assess-test.db")
	t.Setenv("ASSESS_NO_COLOR", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/assess-test.db", cfg.DBPath)
	assert.True(t, cfg.NoColor)
}

func TestConfigFromEnv_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ASSESS_DB=from-dotenv.db\n"), 0o644))
	// godotenv does not override variables that are already set.
	t.Setenv("ASSESS_DB", "")
	os.Unsetenv("ASSESS_DB")
	t.Cleanup(func() { os.Unsetenv("ASSESS_DB") })

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.db", cfg.DBPath)
}

func TestConfigFromEnv_BadBool(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ASSESS_NO_COLOR", "sometimes")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{DBPath: filepath.Join(t.TempDir(), "new.db")}.Validate())
	assert.Error(t, Config{DBPath: t.TempDir()}.Validate())
}
