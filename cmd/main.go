package main

import (
	"io"
	"os"
	"path/filepath"

	"discovery/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogging sends logrus output to stderr and a rotated file under cfg.Dir.
func initLogging(cfg config.LogConfig) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		log.Warnf("creating log dir %s failed, err:%v", cfg.Dir, err)
	}

	fileLogger := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, "discovery.log"),
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // Days
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, fileLogger))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warningf("unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	log.Debugf("Logging initialized: file=%s, level=%s", fileLogger.Filename, level)
}

// resolveConfigPath prefers the --config flag, then DISCOVERY_CONFIG, then
// the default file name in the working directory.
func resolveConfigPath(flagPath string) (string, bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv(config.DefaultConfigEnvVariable); env != "" {
		return env, true
	}
	return config.DefaultConfigFileName, false
}

func loadConfig(flagPath string) (*config.Config, error) {
	path, explicit := resolveConfigPath(flagPath)
	if _, err := os.Stat(path); err != nil && !explicit && os.IsNotExist(err) {
		log.Debugf("no %s found, using defaults", path)
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func main() {
	Execute()
}
