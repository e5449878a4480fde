package config

import (
	"fmt"

	"github.com/shelfwatch/harvest/internal/urlutil"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("max concurrent fetches must be > 0")
	}
	if c.FetchDelay < 0 {
		return fmt.Errorf("fetch delay must be >= 0")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be > 0 requests/sec")
	}
	if c.CatalogPages <= 0 || c.CatalogPages > DefaultMaxCatalogPages {
		return fmt.Errorf("catalog pages must be between 1 and %d", DefaultMaxCatalogPages)
	}
	if len(c.SearchQueries) == 0 {
		return fmt.Errorf("at least one search query is required")
	}
	for _, u := range []string{c.CatalogBaseURL, c.SearchBaseURL, c.RankedListBaseURL} {
		if err := urlutil.ValidateURL(u); err != nil {
			return fmt.Errorf("source URL %q: %w", u, err)
		}
	}
	return nil
}
