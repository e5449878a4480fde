package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel       = "info"
	DefaultJSONLog        = false
	DefaultUserAgent      = "Harvest/1.0 (+https://github.com/shelfwatch/harvest)"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultMaxConcurrent  = 5
	DefaultFetchDelay     = 500 * time.Millisecond
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10

	DefaultCatalogPages    = 3
	DefaultMaxCatalogPages = 50

	DefaultCatalogBaseURL    = "http://books.toscrape.com"
	DefaultSearchBaseURL     = "https://openlibrary.org"
	DefaultRankedListBaseURL = "https://www.gutenberg.org"

	DefaultCSVPath  = "books_data.csv"
	DefaultJSONPath = "books_data.json"
)

// DefaultSearchQueries are the search-API queries used when none are given.
var DefaultSearchQueries = []string{"python programming", "data science"}
