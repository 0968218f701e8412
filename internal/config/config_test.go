package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanri/fman/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, cfg.Root)
	assert.False(t, cfg.NativePrompts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestParse(t *testing.T) {
	data := []byte(`
root: /work/project
native_prompts: true
log:
  level: debug
  file: /tmp/fman.log
`)
	cfg, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "/work/project", cfg.Root)
	assert.True(t, cfg.NativePrompts)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/fman.log", cfg.Log.File)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("root: /elsewhere\n"))
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Root)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := config.Parse([]byte("root: [unclosed"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FMAN_ROOT", dir)
	t.Setenv("FMAN_LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestWorkspaceRoot(t *testing.T) {
	// Outside a git repository the cwd is used; either way the result is
	// a usable directory.
	root := config.WorkspaceRoot()
	assert.NotEmpty(t, root)
}
