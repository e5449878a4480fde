// internal/extract/toplist.go
package extract

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/internal/urlutil"
	"github.com/shelfwatch/harvest/pkg/models"
)

// bySeparator splits a ranked-list entry's text into title and author.
const bySeparator = " by "

// maxListEntries caps how many list entries one call scans.
const maxListEntries = 20

// TopList extracts records from the ranked "top downloads" listing. Every
// entry is a free download, so Price is a present zero, not absent.
type TopList struct{}

// NewTopList creates the ranked-list extractor.
func NewTopList() *TopList {
	return &TopList{}
}

// Source identifies the ranked-list upstream.
func (t *TopList) Source() models.SourceID {
	return models.SourceRankedList
}

// Extract parses the first ordered list in the page, scanning at most
// maxListEntries entries. Entries without a link are skipped.
func (t *TopList) Extract(body []byte, originURL string) ([]models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse ranked list: %w", err)
	}

	list := doc.Find("ol").First()
	if list.Length() == 0 {
		log.Debug().Str("url", originURL).Msg("No ranked list found")
		return nil, nil
	}

	var books []models.Book
	list.Find("li").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxListEntries {
			return false
		}

		link := s.Find("a").First()
		if link.Length() == 0 {
			return true
		}

		title, author := splitTitleAuthor(link.Text())
		books = append(books, models.Book{
			Title:        title,
			Author:       author,
			Price:        models.Float(0),
			Availability: "Free Download",
			URL:          urlutil.Resolve(originURL, link.AttrOr("href", "")),
			Source:       models.SourceRankedList,
			RetrievedAt:  time.Now(),
		})
		return true
	})

	return books, nil
}

// splitTitleAuthor splits entry text on the first " by " and trims both
// halves. Entries without the separator have no known author.
func splitTitleAuthor(text string) (string, string) {
	title, author, found := strings.Cut(text, bySeparator)
	if !found {
		return strings.TrimSpace(text), models.UnknownAuthor
	}
	return strings.TrimSpace(title), strings.TrimSpace(author)
}
