package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discovery_config.toml")
	content := `
[log]
dir = "/tmp/discovery-logs"
level = "debug"

[topology]
path = "networks/ex1.json"

[search]
strategy = "flood"
ttl = 4
use_cache = true

[cache]
path = "cache.json"
deferred_write = true

[benchmark]
workers = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/discovery-logs", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "networks/ex1.json", cfg.Topology.Path)
	assert.Equal(t, "flood", cfg.Search.Strategy)
	require.NotNil(t, cfg.Search.TTL)
	assert.Equal(t, 4, *cfg.Search.TTL)
	assert.True(t, cfg.Search.UseCache)
	assert.True(t, cfg.Cache.DeferredWrite)
	assert.Equal(t, 2, cfg.Benchmark.Workers)
	assert.Equal(t, DefaultBenchmarkOutput, cfg.Benchmark.Output)
	assert.Equal(t, DefaultBenchmarkTTL, cfg.Benchmark.TTL)
	assert.Equal(t, DefaultRandomAttempts, cfg.Benchmark.RandomAttempts)
}

func TestLoadConfigMissingTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discovery_config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nstrategy = \"dfs\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Search.TTL)
	assert.Equal(t, DefaultLogDir, cfg.Log.Dir)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\n"), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultStrategy, cfg.Search.Strategy)
	assert.Nil(t, cfg.Search.TTL)
	assert.Equal(t, DefaultBenchmarkWorkers, cfg.Benchmark.Workers)
}
