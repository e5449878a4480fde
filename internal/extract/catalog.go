// internal/extract/catalog.go
package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/internal/urlutil"
	"github.com/shelfwatch/harvest/pkg/models"
)

// starRatings maps the catalog's star-rating class names onto ordinals.
var starRatings = map[string]float64{
	"One":   1,
	"Two":   2,
	"Three": 3,
	"Four":  4,
	"Five":  5,
}

// Catalog extracts records from paginated book catalog markup. The catalog
// exposes no authorship, so Author is always the unknown sentinel.
type Catalog struct{}

// NewCatalog creates the catalog-page extractor.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Source identifies the catalog upstream.
func (c *Catalog) Source() models.SourceID {
	return models.SourceCatalog
}

// Extract parses every product block on one catalog page. A block with a
// malformed price is skipped; the rest of the page is unaffected.
func (c *Catalog) Extract(body []byte, originURL string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}

	blocks := doc.Find("article.product_pod")
	if blocks.Length() == 0 {
		log.Debug().Str("url", originURL).Msg("No product blocks found")
		return nil, nil
	}

	books := make([]models.Book, 0, blocks.Length())
	blocks.Each(func(i int, s *goquery.Selection) {
		book, ok := extractBlock(s, originURL)
		if !ok {
			return
		}
		books = append(books, book)
	})

	return books, nil
}

// extractBlock builds one record from a product block.
func extractBlock(s *goquery.Selection, originURL string) (models.Book, bool) {
	link := s.Find("h3 a")
	title := link.AttrOr("title", "")

	price, ok := parsePrice(s.Find("p.price_color").Text())
	if !ok {
		log.Warn().
			Str("title", title).
			Str("url", originURL).
			Msg("Skipping item with malformed price")
		return models.Book{}, false
	}

	return models.Book{
		Title:        title,
		Author:       models.UnknownAuthor,
		Price:        price,
		Availability: availabilityLabel(s),
		URL:          urlutil.Resolve(originURL, link.AttrOr("href", "")),
		Source:       models.SourceCatalog,
		Rating:       starRating(s),
		RetrievedAt:  time.Now(),
	}, true
}

// parsePrice normalizes a catalog price label like "£51.77". The page often
// serves a mis-encoded "Â" before the currency symbol; both are stripped
// before numeric parsing. A missing label is a real zero price, while an
// unparseable or negative one drops the item.
func parsePrice(text string) (*float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Float(0), true
	}

	text = strings.ReplaceAll(text, "Â", "")
	text = strings.ReplaceAll(text, "£", "")

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return models.Float(v), true
}

// starRating reads the ordinal from the block's star-rating classes, e.g.
// class="star-rating Three". Unrecognized labels yield an absent rating.
func starRating(s *goquery.Selection) *float64 {
	classes := strings.Fields(s.Find("p.star-rating").AttrOr("class", ""))
	for _, class := range classes {
		if v, ok := starRatings[class]; ok {
			return models.Float(v)
		}
	}
	return nil
}

// availabilityLabel reduces the stock indicator to one of two labels.
func availabilityLabel(s *goquery.Selection) string {
	if s.Find("p.instock.availability").Length() > 0 {
		return "In stock"
	}
	return "Out of stock"
}
