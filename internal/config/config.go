// Package config loads process configuration from the environment
package config

import (
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config is read from STATBLOCK_* environment variables
type Config struct {
	GRPCPort      int    `env:"STATBLOCK_GRPC_PORT" envDefault:"50051"`
	Store         string `env:"STATBLOCK_STORE" envDefault:"sqlite"`
	RedisAddr     string `env:"STATBLOCK_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath    string `env:"STATBLOCK_SQLITE_PATH" envDefault:"statblock.db"`
	LogLevel      string `env:"STATBLOCK_LOG_LEVEL" envDefault:"info"`
	RollHitPoints bool   `env:"STATBLOCK_ROLL_HIT_POINTS" envDefault:"false"`
	BatchWorkers  int    `env:"STATBLOCK_BATCH_WORKERS" envDefault:"4"`
}

// Load reads the given dotenv files, or .env when none are named, and then
// the environment. Missing dotenv files are skipped. Variables already set
// in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to load %s", f)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that the chosen store is addressable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("STATBLOCK_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("STATBLOCK_BATCH_WORKERS", c.BatchWorkers, 1, 64, vb)
	errors.ValidateEnum("STATBLOCK_STORE", c.Store, []string{StoreRedis, StoreSQLite}, vb)
	if _, ok := logLevels[c.LogLevel]; !ok {
		vb.Fieldf("STATBLOCK_LOG_LEVEL", "must be one of debug, info, warn, error; got %q", c.LogLevel)
	}

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("STATBLOCK_REDIS_ADDR", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("STATBLOCK_SQLITE_PATH", c.SQLitePath, vb)
	}

	return vb.Build()
}

// Level returns the slog level named by LogLevel, defaulting to info
func (c *Config) Level() slog.Level {
	if l, ok := logLevels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}

// NewLogger returns a JSON logger at the configured level
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
