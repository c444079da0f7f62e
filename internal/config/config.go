package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Model       ModelConfig
	Fingerprint FingerprintConfig
	Workload    WorkloadConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
	// File enables a rotating log file in addition to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

type ModelConfig struct {
	Path       string
	CacheSize  int
	RandomSeed uint64
}

type FingerprintConfig struct {
	// Sources are hashed in order. Empty means the running executable
	// followed by the model artifact.
	Sources []string
}

type WorkloadConfig struct {
	DefaultDelay time.Duration
	MaxDelay     time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	// must exceed WORKLOAD_MAX_DELAY or simulated workloads get cut off
	v.SetDefault("SERVER_WRITE_TIMEOUT", "330s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)
	v.SetDefault("MODEL_PATH", "models/iris_tree.json")
	v.SetDefault("MODEL_CACHE_SIZE", 1024)
	v.SetDefault("RANDOM_SEED", 0)
	v.SetDefault("FINGERPRINT_SOURCES", "")
	v.SetDefault("WORKLOAD_DEFAULT_DELAY", "1s")
	v.SetDefault("WORKLOAD_MAX_DELAY", "5m")
	v.SetDefault("METRICS_ENABLED", true)

	// Optional config file
	v.SetDefault("CONFIG_FILE", "")
	v.AutomaticEnv()
	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     parseDuration(v, "SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    parseDuration(v, "SERVER_WRITE_TIMEOUT", 330*time.Second),
			ShutdownTimeout: parseDuration(v, "SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
		},
		Model: ModelConfig{
			Path:       v.GetString("MODEL_PATH"),
			CacheSize:  v.GetInt("MODEL_CACHE_SIZE"),
			RandomSeed: v.GetUint64("RANDOM_SEED"),
		},
		Fingerprint: FingerprintConfig{
			Sources: splitList(v.GetString("FINGERPRINT_SOURCES")),
		},
		Workload: WorkloadConfig{
			DefaultDelay: parseDuration(v, "WORKLOAD_DEFAULT_DELAY", time.Second),
			MaxDelay:     parseDuration(v, "WORKLOAD_MAX_DELAY", 5*time.Minute),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	if cfg.Model.Path == "" {
		return nil, errors.New("MODEL_PATH is required")
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
