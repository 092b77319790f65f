package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL points at the public airplanes.live v2 API.
	DefaultBaseURL = "https://api.airplanes.live/v2"
	// DefaultTimeoutSeconds bounds every outbound request.
	DefaultTimeoutSeconds = 15
	// DefaultHTTPAddr is where the HTTP front listens when enabled.
	DefaultHTTPAddr = ":8080"
)

// Config holds all settings for the server. It is assembled once at startup
// and passed down by value reference; nothing mutates it afterwards.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	HTTPAddr string
	Log      LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig loads configuration from defaults, an optional config file and
// SKYQUERY_* environment variables, in ascending order of precedence.
// An empty configFile means the default search paths are used.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("http_addr", DefaultHTTPAddr)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/skyquery")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("loadConfig: reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	v.SetEnvPrefix("SKYQUERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		BaseURL:  strings.TrimRight(v.GetString("base_url"), "/"),
		Timeout:  time.Duration(v.GetInt("timeout_seconds")) * time.Second,
		HTTPAddr: v.GetString("http_addr"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("loadConfig: invalid configuration: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout_seconds must be greater than 0")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
