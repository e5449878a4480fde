// internal/extract/searchapi.go
package extract

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shelfwatch/harvest/internal/urlutil"
	"github.com/shelfwatch/harvest/pkg/models"
)

// MaxSearchDocs caps how many result documents one search call yields.
const MaxSearchDocs = 20

// searchResponse mirrors the search endpoint's response shape.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	AuthorNames    []string `json:"author_name"`
	ISBN           []string `json:"isbn"`
	RatingsAverage *float64 `json:"ratings_average"`
}

// SearchAPI extracts records from the search endpoint's JSON responses.
// The upstream carries no pricing, so Price is always absent, never zero.
type SearchAPI struct{}

// NewSearchAPI creates the search-API extractor.
func NewSearchAPI() *SearchAPI {
	return &SearchAPI{}
}

// Source identifies the search-API upstream.
func (s *SearchAPI) Source() models.SourceID {
	return models.SourceSearchAPI
}

// Extract decodes one search response into records, at most MaxSearchDocs.
func (s *SearchAPI) Extract(body []byte, originURL string) ([]models.Book, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	docs := resp.Docs
	if len(docs) > MaxSearchDocs {
		docs = docs[:MaxSearchDocs]
	}

	books := make([]models.Book, 0, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "Unknown"
		}

		books = append(books, models.Book{
			Title:        title,
			Author:       firstOr(doc.AuthorNames, models.UnknownAuthor),
			Availability: "Check Open Library",
			URL:          workURL(originURL, doc.Key),
			Source:       models.SourceSearchAPI,
			ISBN:         firstOr(doc.ISBN, ""),
			Rating:       doc.RatingsAverage,
			RetrievedAt:  time.Now(),
		})
	}

	return books, nil
}

// workURL turns a result document key like "/works/OL45804W" into the
// work's absolute page URL on the API host.
func workURL(originURL, key string) string {
	if key == "" {
		return originURL
	}
	return urlutil.Resolve(originURL, key)
}

func firstOr(vals []string, fallback string) string {
	if len(vals) > 0 {
		return vals[0]
	}
	return fallback
}
