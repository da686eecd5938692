package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.SearchDebounce())
	assert.Equal(t, 500*time.Millisecond, cfg.UI.SubmitDelay())
}

func TestLoadFromPathRequiresFile(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.SeedPath = "/tmp/seed.yaml"
	cfg.UI.Title = "Ops"
	cfg.UI.SearchDebounceMs = 150
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search_debounce_ms = 150")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntitle = \"Mine\"\n"), 0o644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Mine", cfg.UI.Title)
	assert.Equal(t, 300, cfg.UI.SearchDebounceMs)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("WIDGETDASH_UI_SUBMIT_DELAY_MS", "0")
	t.Setenv("WIDGETDASH_SEED_PATH", "/data/seed.json")

	cfg, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.UI.SubmitDelayMs)
	assert.Equal(t, "/data/seed.json", cfg.SeedPath)
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmarkdown_style = \"neon\"\n"), 0o644))
	_, err := NewConfigServiceAt(path).Load()
	assert.ErrorContains(t, err, "unknown markdown_style")

	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))
	_, err = NewConfigServiceAt(path).Load()
	assert.ErrorContains(t, err, "failed to read config file")
}
