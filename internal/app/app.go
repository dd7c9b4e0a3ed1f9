// Package app provides the application container and dependency injection.
package app

import (
	"log/slog"
	"os"

	"github.com/sanixdarker/gql-jddf/internal/converter"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// Config holds application configuration.
type Config struct {
	Port         int
	Debug        bool
	MaxBodyBytes int64
	RateRPS      float64
	RateBurst    int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:         8080,
		MaxBodyBytes: 10 << 20,
		RateRPS:      10,
		RateBurst:    20,
	}
}

// App is the main application container.
type App struct {
	Config           *Config
	Logger           *slog.Logger
	ConverterManager *converter.Manager
	Validator        *jddf.Validator
}

// New creates a new application instance.
func New(cfg *Config) *App {
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	return &App{
		Config:           cfg,
		Logger:           logger,
		ConverterManager: converter.NewManager(),
		Validator:        &jddf.Validator{},
	}
}
