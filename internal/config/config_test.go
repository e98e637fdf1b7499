package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.JSONLog)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 2, cfg.DefaultLimit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SNIPPETS_LOG_LEVEL", "debug")
	t.Setenv("SNIPPETS_OUTPUT", "yaml")
	t.Setenv("SNIPPETS_DEFAULT_LIMIT", "3")
	t.Setenv("SNIPPETS_JSON_LOG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, 3, cfg.DefaultLimit)
	assert.True(t, cfg.JSONLog)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SNIPPETS_DEFAULT_LIMIT=4\n"), 0o600))
	t.Chdir(dir)
	// godotenv sets the variable for the whole process.
	t.Cleanup(func() { os.Unsetenv("SNIPPETS_DEFAULT_LIMIT") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DefaultLimit)
}

func TestValidateCollectsEveryError(t *testing.T) {
	c := Config{LogLevel: "loud", Output: "xml", DefaultLimit: 0}

	err := c.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
	assert.Contains(t, err.Error(), "SNIPPETS_LOG_LEVEL")
	assert.Contains(t, err.Error(), "SNIPPETS_OUTPUT")
	assert.Contains(t, err.Error(), "SNIPPETS_DEFAULT_LIMIT")
}

func TestLoadConfigRejectsBadLimit(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SNIPPETS_DEFAULT_LIMIT", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}
