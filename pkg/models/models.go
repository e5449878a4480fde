package models

import "time"

// SourceID identifies which upstream source produced a record.
// The set of sources is closed and known at orchestration time.
type SourceID string

const (
	SourceCatalog    SourceID = "books.toscrape.com"
	SourceSearchAPI  SourceID = "openlibrary.org"
	SourceRankedList SourceID = "gutenberg.org"
)

// UnknownAuthor is the sentinel stored when a source exposes no authorship.
const UnknownAuthor = "Unknown"

// Book represents one normalized book record harvested from a source.
//
// Price and Rating are pointers so absence stays distinct from zero: the
// ranked list emits a real zero price (free downloads) while the search API
// emits no price at all. Rating scales vary by source and are stored as the
// source reports them.
type Book struct {
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Price        *float64  `json:"price"`
	Availability string    `json:"availability"`
	URL          string    `json:"url"`
	Source       SourceID  `json:"source"`
	ISBN         string    `json:"isbn,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	RetrievedAt  time.Time `json:"retrieved_at"`
}

// Float returns a pointer to v, for building the optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
