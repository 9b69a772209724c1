package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, "gdelt", cfg.Fetch.Source)
	assert.False(t, cfg.LLMEnabled())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig("non-existent-config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  listen: "127.0.0.1:9090"
fetch:
  source: rss
  window: 4h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Listen)
	assert.Equal(t, "rss", cfg.Fetch.Source)
	assert.Equal(t, 4*time.Hour, cfg.Fetch.Window)
}

func TestMakePipeline(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	// nil database is fine for construction, nothing runs here
	t.Run("gdelt source", func(t *testing.T) {
		p := makePipeline(cfg, nil)
		assert.NotNil(t, p)
	})

	t.Run("rss source", func(t *testing.T) {
		cfg.Fetch.Source = "rss"
		p := makePipeline(cfg, nil)
		assert.NotNil(t, p)
	})

	t.Run("llm enabled", func(t *testing.T) {
		cfg.LLM.APIKey = "test-key"
		p := makePipeline(cfg, nil)
		assert.NotNil(t, p)
	})
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "")
	})
}
