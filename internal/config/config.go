package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	Headers     map[string]string

	// Fetch pacing
	MaxConcurrent  int
	FetchDelay     time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	// Sources
	CatalogPages      int
	SearchQueries     []string
	CatalogBaseURL    string
	SearchBaseURL     string
	RankedListBaseURL string

	// Export
	CSVPath     string
	JSONPath    string
	PostgresDSN string
}

// Load builds a Config by combining defaults, a .env file when present,
// HARVEST_* environment variables, and the persistent CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	// A missing .env file is fine; explicit environment always wins anyway.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          DefaultLogLevel,
		JSONLog:           DefaultJSONLog,
		HTTPTimeout:       DefaultHTTPTimeout,
		UserAgent:         DefaultUserAgent,
		MaxConcurrent:     DefaultMaxConcurrent,
		FetchDelay:        DefaultFetchDelay,
		RateLimitRPS:      DefaultRateLimitRPS,
		RateLimitBurst:    DefaultRateLimitBurst,
		CatalogPages:      DefaultCatalogPages,
		SearchQueries:     DefaultSearchQueries,
		CatalogBaseURL:    DefaultCatalogBaseURL,
		SearchBaseURL:     DefaultSearchBaseURL,
		RankedListBaseURL: DefaultRankedListBaseURL,
		CSVPath:           DefaultCSVPath,
		JSONPath:          DefaultJSONPath,
	}

	applyEnv(cfg)

	if cmd != nil {
		applyFlags(cfg, cmd)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HARVEST_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("HARVEST_POSTGRES_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("HARVEST_CATALOG_URL"); v != "" {
		cfg.CatalogBaseURL = v
	}
	if v := os.Getenv("HARVEST_SEARCH_URL"); v != "" {
		cfg.SearchBaseURL = v
	}
	if v := os.Getenv("HARVEST_RANKED_URL"); v != "" {
		cfg.RankedListBaseURL = v
	}
	if v := os.Getenv("HARVEST_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxConcurrent = n
		}
	}
	if v := os.Getenv("HARVEST_FETCH_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchDelay = d
		}
	}
}

func applyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	if f := flags.Lookup("user-agent"); f != nil {
		if s := f.Value.String(); s != "" {
			cfg.UserAgent = s
		}
	}
	if f := flags.Lookup("timeout"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if f := flags.Lookup("concurrency"); f != nil && f.Changed {
		if n, err := strconv.Atoi(f.Value.String()); err == nil {
			cfg.MaxConcurrent = n
		}
	}
	if f := flags.Lookup("delay"); f != nil && f.Changed {
		if d, err := time.ParseDuration(f.Value.String()); err == nil {
			cfg.FetchDelay = d
		}
	}
	if f := flags.Lookup("json"); f != nil && f.Value.String() == "true" {
		cfg.JSONLog = true
	}
	if f := flags.Lookup("verbose"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "debug"
	}
	if f := flags.Lookup("quiet"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "error"
	}
	if hs, err := flags.GetStringArray("header"); err == nil && len(hs) > 0 {
		cfg.Headers = ParseHeaders(hs)
	}
}

// ParseHeaders converts repeated "Key: Value" flag values into a header map
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string)
	for _, hdr := range h {
		parts := strings.SplitN(hdr, ":", 2)
		if len(parts) == 2 {
			m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return m
}
