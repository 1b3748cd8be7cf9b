package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/docseg/pkg/config/env"
	"github.com/DjordjeVuckovic/docseg/pkg/utils"
)

const defaultEnvPath = "cmd/docseg_api/.env"

type Config struct {
	AppEnv       string   `env:"APP_ENV" envDefault:"local"`
	Port         string   `env:"PORT" envDefault:"8080"`
	UseHttp2     bool     `env:"USE_HTTP2" envDefault:"false"`
	CorsOrigins  []string `env:"CORS_ORIGINS" envSeparator:","`
	IoUThreshold float64  `env:"IOU_THRESHOLD" envDefault:"0.5"`
	// MaxSpans bounds the larger collection of a request; matching is cubic in it.
	MaxSpans int `env:"MAX_SPANS" envDefault:"2000"`
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv("", defaultEnvPath); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}
	return ParseConfig()
}

// ParseConfig reads the configuration from the process environment only.
func ParseConfig() (*Config, error) {
	cfg, err := env.Parse[Config]()
	if err != nil {
		return nil, err
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if cfg.IoUThreshold < 0 || cfg.IoUThreshold > 1 {
		return nil, fmt.Errorf("invalid IOU_THRESHOLD %v: must be within [0, 1]", cfg.IoUThreshold)
	}
	if cfg.MaxSpans <= 0 {
		return nil, fmt.Errorf("invalid MAX_SPANS %d: must be positive", cfg.MaxSpans)
	}

	var origins []string
	for _, o := range cfg.CorsOrigins {
		origins = append(origins, utils.SplitTrimmed(o, ",")...)
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.CorsOrigins = origins

	return &cfg, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
