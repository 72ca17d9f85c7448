package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        slog.Level
	AllowedOrigins  []string
	IdentityHeader  string
	AnonymousUser   string
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// LoadConfig reads the optional env files and then the process environment.
// Missing .env files are not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(GetEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(GetEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(GetEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	config := &Config{
		Port:            GetEnv("PORT", "8000"),
		Env:             GetEnv("ENV", "development"),
		LogLevel:        level,
		AllowedOrigins:  splitList(GetEnv("CORS_ALLOWED_ORIGINS", "*")),
		IdentityHeader:  GetEnv("IDENTITY_HEADER", "X-User-Id"),
		AnonymousUser:   GetEnv("ANONYMOUS_USER", "anonymous"),
		MetricsEnabled:  metricsEnabled,
		ShutdownTimeout: shutdownTimeout,
	}

	if len(config.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must name at least one origin")
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
