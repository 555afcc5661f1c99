package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"discovery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(config.DefaultConfigEnvVariable, "")
	path, explicit := resolveConfigPath("")
	assert.Equal(t, config.DefaultConfigFileName, path)
	assert.False(t, explicit)

	t.Setenv(config.DefaultConfigEnvVariable, "/etc/discovery.toml")
	path, explicit = resolveConfigPath("")
	assert.Equal(t, "/etc/discovery.toml", path)
	assert.True(t, explicit)

	path, explicit = resolveConfigPath("local.toml")
	assert.Equal(t, "local.toml", path)
	assert.True(t, explicit)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSearchRecordAndReplay(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "discovery_config.toml")
	content := fmt.Sprintf("[log]\ndir = %q\n\n[topology]\npath = %q\n",
		filepath.Join(dir, "logs"), filepath.Join("..", "networks", "ex1.json"))
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	stepsFile := filepath.Join(dir, "steps.json")
	cacheFile := filepath.Join(dir, "cache.json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"search", "--config", configFile,
		"--requester", "n1", "--resource", "r3",
		"--strategy", "bfs", "--ttl", "4",
		"--cache", cacheFile, "--record", stepsFile,
	})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "n1 -> n2 -> n4")
	assert.FileExists(t, cacheFile)
	assert.FileExists(t, stepsFile)

	out.Reset()
	rootCmd.SetArgs([]string{"replay", "--config", configFile, "--steps", stepsFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "FOUND")
}

func TestGenerateThenBench(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "discovery_config.toml")
	content := fmt.Sprintf("[log]\ndir = %q\n", filepath.Join(dir, "logs"))
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	network := filepath.Join(dir, "hex.json")
	results := filepath.Join(dir, "results.csv")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--config", configFile, "--nodes", "7", "--resources", "7", "--out", network})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "nodes: 7")
	assert.FileExists(t, network)

	out.Reset()
	rootCmd.SetArgs([]string{
		"bench", "--config", configFile,
		"--topology", network, "--out", results,
		"--cache-dir", dir, "--strategies", "bfs", "--ttl", "10",
	})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, results)
	assert.FileExists(t, filepath.Join(dir, "cache_bfs.json"))
	assert.Contains(t, out.String(), "bfs")
}
