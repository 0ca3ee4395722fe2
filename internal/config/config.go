// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is loaded first when present; variables
// already set in the process environment win. Parsing uses caarlos0/env struct tags.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"lrucache/internal/cache"
	"lrucache/internal/logger"
)

// Config controls the command line tool.
type Config struct {
	Capacity  int    `env:"LRU_CAPACITY" envDefault:"5"`
	Verify    bool   `env:"LRU_VERIFY" envDefault:"false"`
	LogLevel  string `env:"LRU_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LRU_LOG_FORMAT" envDefault:"text"`
}

// Load reads .env files (optional) and then the environment into a Config.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load dotenv: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the tool cannot run with.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("config: LRU_CAPACITY=%d: %w", c.Capacity, cache.ErrInvalidCapacity)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LRU_LOG_LEVEL: %w", err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: LRU_LOG_FORMAT: %w", err)
	}
	return nil
}
