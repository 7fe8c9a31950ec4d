package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port            int           `json:"port"`
	Environment     string        `json:"environment"`
	LogLevel        string        `json:"log_level"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Rate limiting, per client IP
	RateLimitEnabled        bool    `json:"rate_limit_enabled"`
	RateLimitRequestsPerSec float64 `json:"rate_limit_requests_per_sec"`
	RateLimitBurst          int     `json:"rate_limit_burst"`

	// CORS
	CORSAllowOrigins []string `json:"cors_allow_origins"`

	// Document limits
	MaxGenerateCount        int  `json:"max_generate_count"`
	MaxBatchSize            int  `json:"max_batch_size"`
	StrictValidationDefault bool `json:"strict_validation_default"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables, after reading an
// optional .env file found in the working directory or one of its parents.
func LoadConfig() error {
	loadDotEnv()

	if err := checkEnvTypes(); err != nil {
		return err
	}

	cfg := &Config{
		// Server configuration
		Port:            env.GetInt("PORT", 8080),
		Environment:     env.GetString("ENVIRONMENT", "development"),
		LogLevel:        env.GetString("LOG_LEVEL", "info"),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// Tracing configuration
		TracingEnabled:  env.GetBool("TRACING_ENABLED", false),
		TracingEndpoint: env.GetString("TRACING_ENDPOINT", "localhost:4317"),

		// Rate limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 20.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 40),

		// CORS
		CORSAllowOrigins: parseCommaSeparatedList(env.GetString("CORS_ALLOW_ORIGINS", "*")),

		// Document limits
		MaxGenerateCount:        env.GetInt("MAX_GENERATE_COUNT", 100),
		MaxBatchSize:            env.GetInt("MAX_BATCH_SIZE", 500),
		StrictValidationDefault: env.GetBool("STRICT_VALIDATION_DEFAULT", false),
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

// Keys whose raw values must parse before the env getters read them; the
// getters fall back to the default on a malformed value.
var (
	intKeys = []string{
		"PORT",
		"SHUTDOWN_TIMEOUT_SECONDS",
		"RATE_LIMIT_BURST",
		"MAX_GENERATE_COUNT",
		"MAX_BATCH_SIZE",
	}
	floatKeys = []string{"RATE_LIMIT_REQUESTS_PER_SEC"}
	boolKeys  = []string{
		"TRACING_ENABLED",
		"RATE_LIMIT_ENABLED",
		"STRICT_VALIDATION_DEFAULT",
	}
)

// checkEnvTypes rejects set, non-empty variables that do not parse as their
// key's type. Empty values are treated as unset.
func checkEnvTypes() error {
	for _, key := range intKeys {
		if value, ok := lookupNonEmpty(key); ok {
			if _, err := strconv.Atoi(value); err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	for _, key := range floatKeys {
		if value, ok := lookupNonEmpty(key); ok {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	for _, key := range boolKeys {
		if value, ok := lookupNonEmpty(key); ok {
			if _, err := strconv.ParseBool(value); err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
		}
	}
	return nil
}

func lookupNonEmpty(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	return value, ok && value != ""
}

// Validate checks value ranges that the env getters cannot express.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS: %s", c.ShutdownTimeout)
	}
	if c.RateLimitEnabled {
		if c.RateLimitRequestsPerSec <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_REQUESTS_PER_SEC: %v", c.RateLimitRequestsPerSec)
		}
		if c.RateLimitBurst <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_BURST: %d", c.RateLimitBurst)
		}
	}
	if c.TracingEnabled && c.TracingEndpoint == "" {
		return fmt.Errorf("TRACING_ENDPOINT is required when TRACING_ENABLED is set")
	}
	if c.MaxGenerateCount <= 0 {
		return fmt.Errorf("invalid MAX_GENERATE_COUNT: %d", c.MaxGenerateCount)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("invalid MAX_BATCH_SIZE: %d", c.MaxBatchSize)
	}
	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// parseCommaSeparatedList splits a comma separated value, trimming blanks
func parseCommaSeparatedList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// loadDotEnv walks up from the working directory and loads the first .env
// file it finds. Variables already set in the environment win.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
