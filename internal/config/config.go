package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	PhotosRootPath string `toml:"photos_root_path"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	MealAnalysisPerMin          int `toml:"meal_analysis_per_min"`
	CacheSizeMB                 int `toml:"cache_size_mb"`

	// Timezone decides what "today" means for logs, streaks and routines.
	Timezone    string `toml:"timezone"`
	GeminiModel string `toml:"gemini_model"`

	location *time.Location
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the validated config of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate fills in defaults and checks the required fields.
func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return errors.New("postgres host, port and db name must be set")
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		return errors.New("redis host and port must be set")
	}
	if c.PhotosRootPath == "" {
		return errors.New("photos root path must be set")
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.MealAnalysisPerMin <= 0 {
		c.MealAnalysisPerMin = 10
	}
	if c.CacheSizeMB <= 0 {
		c.CacheSizeMB = 16
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-1.5-flash"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location returns the configured time zone, UTC if the config was never validated.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
