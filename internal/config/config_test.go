package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"news_dir": "/data/news", "top_n": 3, "min_score": 10.5, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/news", cfg.NewsDir)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 10.5, cfg.MinScore)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateRejectsNegativeLimits(t *testing.T) {
	cfg := &Config{TopN: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{MinScore: -0.5}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingNewsDir(t *testing.T) {
	cfg := &Config{NewsDir: filepath.Join(t.TempDir(), "absent")}
	assert.Error(t, cfg.Validate())
}

func TestValidateAcceptsExistingPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{NewsDir: dir, StocksDir: dir, TopN: 5}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TopN: 3}
	merged := cfg.MergeWithDefaults(Config{NewsDir: "/data/news", TopN: 5, MinScore: 5.0})

	assert.Equal(t, "/data/news", merged.NewsDir)
	assert.Equal(t, 3, merged.TopN)
	assert.Equal(t, 5.0, merged.MinScore)
}
