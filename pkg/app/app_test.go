package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/starlaser/pkg/config"
	"github.com/gonewx/starlaser/pkg/embedded"
)

func TestLoadGameConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("seed: abc\nwindow:\n  width: 400\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadGameConfig("")
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Seed)
	assert.Equal(t, 400.0, cfg.Window.Width)
	assert.Equal(t, float64(config.GameWindowHeight), cfg.Window.Height)
}

func TestLoadGameConfig_DefaultsWithoutEmbedded(t *testing.T) {
	embedded.Init(nil)

	cfg, err := LoadGameConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGameConfig(), cfg)
	assert.Equal(t, "defaults", configSource(""))
}

func TestLoadGameConfig_EmbeddedMissingFile(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(nil) })

	_, err := LoadGameConfig("")
	assert.Error(t, err)
}

func TestLoadGameConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = \"xyz\"\n[timers]\nenemySpawn = 1.5\n"), 0o644))

	cfg, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "xyz", cfg.Seed)
	assert.Equal(t, 1.5, cfg.Timers.EnemySpawn)

	_, err = LoadGameConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigSource(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(nil) })

	assert.Equal(t, "embedded:data/game.yaml", configSource(""))
	assert.Equal(t, "my.yaml", configSource("my.yaml"))
}

func TestWindowSize_ZeroWidth(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Window.Width = 0
	a := &App{gameConfig: cfg}

	w, h := a.WindowSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 676, h)
}
