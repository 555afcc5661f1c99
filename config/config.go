package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Config holds the overall configuration structure mapping to discovery_config.toml
type Config struct {
	Log       LogConfig       `toml:"log"`
	Topology  TopologyConfig  `toml:"topology"`
	Search    SearchConfig    `toml:"search"`
	Cache     CacheConfig     `toml:"cache"`
	Benchmark BenchmarkConfig `toml:"benchmark"`
}

type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

type TopologyConfig struct {
	Path string `toml:"path"`
}

type SearchConfig struct {
	Strategy string `toml:"strategy"`
	// TTL stays nil when the file does not set it; searches then refuse to run.
	TTL      *int  `toml:"ttl,omitempty"`
	UseCache bool  `toml:"use_cache"`
	Seed     int64 `toml:"seed,omitempty"`
}

type CacheConfig struct {
	Path          string `toml:"path"`
	DeferredWrite bool   `toml:"deferred_write"`
}

type BenchmarkConfig struct {
	Workers        int    `toml:"workers"`
	Output         string `toml:"output"`
	CacheDir       string `toml:"cache_dir"`
	RandomAttempts int    `toml:"random_attempts"`
	TTL            int    `toml:"ttl"`
}

const (
	DefaultLogDir            = "./logs"
	DefaultLogLevel          = "info"
	DefaultStrategy          = "bfs"
	DefaultBenchmarkWorkers  = 8
	DefaultBenchmarkOutput   = "results.csv"
	DefaultBenchmarkTTL      = 50
	DefaultRandomAttempts    = 5
	DefaultBenchmarkCacheDir = "."
	DefaultConfigFileName    = "discovery_config.toml"
	DefaultConfigEnvVariable = "DISCOVERY_CONFIG"
)

func LoadConfig(path string) (*Config, error) {
	var cfg Config
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error getting absolute path for %s: %w", path, err)
	}

	log.Infof("Attempting to load configuration from: %s", absPath)

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding TOML file %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// configuration file exists.
func Default() *Config {
	var cfg Config
	cfg.ApplyDefaults()
	return &cfg
}

func (cfg *Config) ApplyDefaults() {
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = DefaultLogDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Search.Strategy == "" {
		log.Warningf("search strategy not specified in config, using %s", DefaultStrategy)
		cfg.Search.Strategy = DefaultStrategy
	}
	if cfg.Benchmark.Workers <= 0 {
		cfg.Benchmark.Workers = DefaultBenchmarkWorkers
	}
	if cfg.Benchmark.Output == "" {
		cfg.Benchmark.Output = DefaultBenchmarkOutput
	}
	if cfg.Benchmark.CacheDir == "" {
		cfg.Benchmark.CacheDir = DefaultBenchmarkCacheDir
	}
	if cfg.Benchmark.RandomAttempts <= 0 {
		cfg.Benchmark.RandomAttempts = DefaultRandomAttempts
	}
	if cfg.Benchmark.TTL <= 0 {
		cfg.Benchmark.TTL = DefaultBenchmarkTTL
	}
}
