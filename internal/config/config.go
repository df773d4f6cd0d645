// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/madking-api/internal/errors"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds the settings for the server and its tools
type Config struct {
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"3000"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize   int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	SeedFile        string        `env:"SEED_FILE"`
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment and parses the result. Missing dotenv files are not
// an error; variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	if c.HTTPPort == c.GRPCPort {
		vb.Field("GRPC_PORT", "must differ from HTTP_PORT")
	}
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateMin("REDIS_DB", c.RedisDB, 0, vb)
	errors.ValidateMin("REDIS_POOL_SIZE", c.RedisPoolSize, 1, vb)
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{LogFormatJSON, LogFormatText}, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("SHUTDOWN_TIMEOUT", "must be positive")
	}

	return vb.Build()
}

// RedisAddrs splits REDIS_ADDR into its comma separated endpoints
func (c *Config) RedisAddrs() []string {
	var addrs []string
	for _, a := range strings.Split(c.RedisAddr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger described by LOG_LEVEL and LOG_FORMAT
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.ToLower(c.LogFormat) == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
