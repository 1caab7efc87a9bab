package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// serverConfig is read from the environment, optionally seeded by a .env file
type serverConfig struct {
	Host           string        `env:"HOST"`
	Port           int           `env:"PORT,default=8080"`
	BaseURL        string        `env:"BASE_URL,default=http://localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	StorageType    string        `env:"STORAGE_TYPE,default=memory"`
	RedisURL       string        `env:"REDIS_URL"`
	SessionTTL     time.Duration `env:"SESSION_TTL,default=24h"`
	StateSecret    string        `env:"STATE_SECRET"`
	RandomSeed     uint64        `env:"RANDOM_SEED"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS,default=*"`
	StaticDir      string        `env:"STATIC_DIR"`
}

func loadConfig(envFile string) (serverConfig, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return serverConfig{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg serverConfig
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return serverConfig{}, fmt.Errorf("decode environment: %w", err)
	}

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return serverConfig{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}
	return cfg, nil
}
