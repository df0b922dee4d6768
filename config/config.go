package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values come from defaults, then an
// optional YAML file, then the environment.
type Config struct {
	Port            string   `yaml:"port"`
	LogLevel        string   `yaml:"log_level"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	CORSDebug       bool     `yaml:"cors_debug"`
	UploadDelay     string   `yaml:"upload_delay"`
	UploadMaxBytes  int64    `yaml:"upload_max_bytes"`
	ChartCacheTTL   string   `yaml:"chart_cache_ttl"`
	DefaultLanguage string   `yaml:"default_language"`
	SiteURL         string   `yaml:"site_url"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
		},
		UploadDelay:     "3s",
		UploadMaxBytes:  50 << 20,
		ChartCacheTTL:   "10m",
		DefaultLanguage: "en",
		SiteURL:         "https://jansuvidha.in",
	}
}

// Load reads path on top of the defaults and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	c.Port = getEnvWithDefault("PORT", c.Port)
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", c.LogLevel)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
	c.CORSDebug = getEnvAsBool("CORS_DEBUG", c.CORSDebug)
	c.UploadDelay = getEnvWithDefault("UPLOAD_DELAY", c.UploadDelay)
	c.UploadMaxBytes = int64(getEnvAsInt("UPLOAD_MAX_BYTES", int(c.UploadMaxBytes)))
	c.ChartCacheTTL = getEnvWithDefault("CHART_CACHE_TTL", c.ChartCacheTTL)
	c.DefaultLanguage = getEnvWithDefault("DEFAULT_LANGUAGE", c.DefaultLanguage)
	c.SiteURL = getEnvWithDefault("SITE_URL", c.SiteURL)
}

// GetUploadDelay returns the simulated processing time of an upload.
func (c *Config) GetUploadDelay() time.Duration {
	d, err := time.ParseDuration(c.UploadDelay)
	if err != nil || d < 0 {
		return 3 * time.Second
	}
	return d
}

// GetChartCacheTTL returns how long rendered chart images are kept.
func (c *Config) GetChartCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.ChartCacheTTL)
	if err != nil || d <= 0 {
		return 10 * time.Minute
	}
	return d
}

// NewLogger builds a production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
