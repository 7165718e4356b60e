package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	API     APIConfig
	Session SessionConfig
	Log     LogConfig
	Metrics MetricsConfig
	Export  ExportConfig
}

// APIConfig describes how to reach the LMS backend.
type APIConfig struct {
	BaseURL   string
	Prefix    string
	Timeout   time.Duration
	UserAgent string
}

// SessionConfig locates the durable session record.
type SessionConfig struct {
	Path string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig controls the optional local metrics listener.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// ExportConfig controls where gradebook exports land.
type ExportConfig struct {
	Dir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL:   strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Prefix:    v.GetString("API_PREFIX"),
		Timeout:   parseDuration(v.GetString("API_TIMEOUT"), 15*time.Second),
		UserAgent: v.GetString("API_USER_AGENT"),
	}

	cfg.Session = SessionConfig{
		Path: v.GetString("SESSION_PATH"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
		Addr:    v.GetString("METRICS_ADDR"),
	}

	cfg.Export = ExportConfig{
		Dir: v.GetString("EXPORT_DIR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("API_BASE_URL", "http://127.0.0.1:5000")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("API_USER_AGENT", "lms-console")
	v.SetDefault("SESSION_PATH", ".lms-session.json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_METRICS", false)
	v.SetDefault("METRICS_ADDR", ":9102")
	v.SetDefault("EXPORT_DIR", "./exports")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
