package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/energyflow/category"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.UI.Color)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Engine.InferCategories)
	require.NoError(t, cfg.Validate())

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	assert.Equal(t, "/tmp/test-xdg/energyflow", ConfigDir())
	assert.Equal(t, "/tmp/test-xdg/energyflow/config.toml", Path())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "energyflow"), ConfigDir())
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Engine.Category = "gaz"
	cfg.Output.Format = FormatYAML
	cfg.UI.Color = false
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	cat, err := loaded.Category()
	require.NoError(t, err)
	assert.Equal(t, category.Gaz, cat)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, FormatTable, cfg.Output.Format)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":   "[log\n",
		"level":    "[log]\nlevel = \"loud\"\n",
		"format":   "[log]\nformat = \"xml\"\n",
		"output":   "[output]\nformat = \"csv\"\n",
		"category": "[engine]\ncategory = \"steam\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := LoadFile(path)
			require.Error(t, err)
			if name != "syntax" {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
