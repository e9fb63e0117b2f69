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

	Log     LogConfig
	Console ConsoleConfig
	Server  ServerConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ConsoleConfig tunes the admin-console client subsystem: where the CMS
// backend lives and how the picker and upload dialogs behave.
type ConsoleConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	PageSize       int
	ProgressTick   time.Duration
	AutoCloseDelay time.Duration
}

// ServerConfig configures the in-memory stub backend used for development
// and integration tests.
type ServerConfig struct {
	Port           int
	MediaDir       string
	AllowedOrigins []string
	MaxUploadBytes int64
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

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Console = ConsoleConfig{
		BaseURL:        strings.TrimRight(v.GetString("CMS_BASE_URL"), "/"),
		RequestTimeout: parseDuration(v.GetString("CMS_REQUEST_TIMEOUT"), 10*time.Second),
		PageSize:       v.GetInt("PICKER_PAGE_SIZE"),
		ProgressTick:   parseDuration(v.GetString("UPLOAD_PROGRESS_TICK"), 150*time.Millisecond),
		AutoCloseDelay: parseDuration(v.GetString("UPLOAD_AUTO_CLOSE_DELAY"), 500*time.Millisecond),
	}
	if cfg.Console.PageSize <= 0 {
		cfg.Console.PageSize = 20
	}

	maxUpload := v.GetInt64("SERVER_MAX_UPLOAD_BYTES")
	if maxUpload <= 0 {
		maxUpload = 25 * 1024 * 1024
	}
	cfg.Server = ServerConfig{
		Port:           v.GetInt("SERVER_PORT"),
		MediaDir:       v.GetString("SERVER_MEDIA_DIR"),
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
		MaxUploadBytes: maxUpload,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CMS_BASE_URL", "http://localhost:1770")
	v.SetDefault("CMS_REQUEST_TIMEOUT", "10s")
	v.SetDefault("PICKER_PAGE_SIZE", 20)
	v.SetDefault("UPLOAD_PROGRESS_TICK", "150ms")
	v.SetDefault("UPLOAD_AUTO_CLOSE_DELAY", "500ms")

	v.SetDefault("SERVER_PORT", 1770)
	v.SetDefault("SERVER_MEDIA_DIR", "./media")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("SERVER_MAX_UPLOAD_BYTES", 25*1024*1024)
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

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
