// Package config loads application configuration from an optional
// config.toml and DASH_-prefixed environment variables, with built-in
// defaults suitable for local development.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"salesdashboard/sales"
)

// Config holds all application configuration.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	API    APIConfig
	Mock   MockConfig
	Upload UploadConfig
	Log    LogConfig
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name string
	Env  string // development or production
	Port string
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	CORSAllowOrigins    []string
}

// APIConfig holds the remote backend endpoint used by the client adapter.
type APIConfig struct {
	// BaseURL of the transaction/auth backend. Defaults to the local
	// development endpoint.
	BaseURL        string
	TimeoutSeconds int
}

// MockConfig controls the seeded in-memory dataset.
type MockConfig struct {
	Records  int
	Seed     int64
	BaseDate string // YYYY-MM-DD, empty = today
}

// UploadConfig bounds CSV imports.
type UploadConfig struct {
	MaxSizeMB int64
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load reads configuration. Priority, highest first: DASH_-prefixed
// environment variables, config.toml, built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	v.SetEnvPrefix("DASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeoutSeconds:  v.GetInt("http.read_timeout_seconds"),
			WriteTimeoutSeconds: v.GetInt("http.write_timeout_seconds"),
			IdleTimeoutSeconds:  v.GetInt("http.idle_timeout_seconds"),
			CORSAllowOrigins:    v.GetStringSlice("http.cors_allow_origins"),
		},
		API: APIConfig{
			BaseURL:        v.GetString("api.base_url"),
			TimeoutSeconds: v.GetInt("api.timeout_seconds"),
		},
		Mock: MockConfig{
			Records:  v.GetInt("mock.records"),
			Seed:     v.GetInt64("mock.seed"),
			BaseDate: v.GetString("mock.base_date"),
		},
		Upload: UploadConfig{
			MaxSizeMB: v.GetInt64("upload.max_size_mb"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "sales-dashboard"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "4000"
	}
	if cfg.HTTP.ReadTimeoutSeconds == 0 {
		cfg.HTTP.ReadTimeoutSeconds = 15
	}
	if cfg.HTTP.WriteTimeoutSeconds == 0 {
		cfg.HTTP.WriteTimeoutSeconds = 15
	}
	if cfg.HTTP.IdleTimeoutSeconds == 0 {
		cfg.HTTP.IdleTimeoutSeconds = 60
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"http://localhost:3000"}
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:4000"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 15
	}
	if cfg.Mock.Records == 0 {
		cfg.Mock.Records = 100
	}
	if cfg.Mock.Seed == 0 {
		cfg.Mock.Seed = 42
	}
	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

func (c *Config) validate() error {
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("invalid api.base_url %q: %w", c.API.BaseURL, err)
	}
	if c.Mock.Records < 0 {
		return fmt.Errorf("mock.records must not be negative, got %d", c.Mock.Records)
	}
	if c.Mock.BaseDate != "" {
		if _, err := sales.ParseDate(c.Mock.BaseDate); err != nil {
			return fmt.Errorf("invalid mock.base_date: %w", err)
		}
	}
	if c.Upload.MaxSizeMB < 1 {
		return fmt.Errorf("upload.max_size_mb must be at least 1, got %d", c.Upload.MaxSizeMB)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.App.Port
}
