// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/internal/config"
	"github.com/shelfwatch/harvest/internal/fetch"
	"github.com/shelfwatch/harvest/internal/ratelimit"
)

// Application holds the shared dependencies behind every CLI command.
//
// It is created once at startup and torn down through Close.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter ratelimit.RateLimiter
	Fetcher     *fetch.Fetcher
	startTime   time.Time
}

// New creates and initializes an Application: it configures the global
// logger from the config, then builds the rate limiter and the fetcher on
// top of it.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.NewConsoleWriter()
	}

	logger := zerolog.New(logWriter).With().Timestamp().Logger()
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	rateLimiter := ratelimit.NewDomainLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Int("burst", cfg.RateLimitBurst).
		Msg("Rate limiter initialized")

	fetcher := fetch.New(rateLimiter, fetch.Options{
		MaxConcurrent: cfg.MaxConcurrent,
		Delay:         cfg.FetchDelay,
		Timeout:       cfg.HTTPTimeout,
		UserAgent:     cfg.UserAgent,
		Headers:       cfg.Headers,
	})
	logger.Debug().
		Int("max_concurrent", cfg.MaxConcurrent).
		Dur("delay", cfg.FetchDelay).
		Dur("timeout", cfg.HTTPTimeout).
		Msg("Fetcher initialized")

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: rateLimiter,
		Fetcher:     fetcher,
		startTime:   time.Now(),
	}

	logger.Debug().Msg("Application initialized")
	return app, nil
}

// Close shuts the application down, releasing pooled connections. Shutdown
// problems are logged, not returned, so cleanup always runs to the end.
func (a *Application) Close(ctx context.Context) error {
	if a.Fetcher != nil {
		a.Fetcher.Close()
	}

	a.Logger.Debug().
		Dur("uptime", time.Since(a.startTime)).
		Msg("Application shutdown complete")
	return nil
}
