package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shelfwatch/harvest/pkg/models"
)

const listOrigin = "https://www.gutenberg.org/browse/scores/top"

func rankedList(entries ...string) []byte {
	return []byte("<html><body><h2>Top 100</h2><ol>" + strings.Join(entries, "\n") + "</ol></body></html>")
}

func TestTopListExtract(t *testing.T) {
	page := rankedList(
		`<li><a href="/ebooks/84">Frankenstein by Mary Shelley</a></li>`,
		`<li><a href="/ebooks/16328">Beowulf</a></li>`,
		`<li><a href="/ebooks/2701">Moby Dick  by  Herman Melville</a></li>`,
	)

	books, err := NewTopList().Extract(page, listOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("expected 3 records, got %d", len(books))
	}

	first := books[0]
	if first.Title != "Frankenstein" || first.Author != "Mary Shelley" {
		t.Errorf("split = %q / %q", first.Title, first.Author)
	}
	if first.URL != "https://www.gutenberg.org/ebooks/84" {
		t.Errorf("url = %q", first.URL)
	}
	if first.Price == nil || *first.Price != 0 {
		t.Errorf("price = %v, want a present zero", first.Price)
	}
	if first.Availability != "Free Download" {
		t.Errorf("availability = %q", first.Availability)
	}
	if first.Source != models.SourceRankedList {
		t.Errorf("source = %q", first.Source)
	}

	if books[1].Author != models.UnknownAuthor {
		t.Errorf("author without separator = %q, want unknown sentinel", books[1].Author)
	}
	if books[1].Title != "Beowulf" {
		t.Errorf("title without separator = %q", books[1].Title)
	}

	// Extra whitespace around the separator must be trimmed off both halves.
	if books[2].Title != "Moby Dick" || books[2].Author != "Herman Melville" {
		t.Errorf("trimmed split = %q / %q", books[2].Title, books[2].Author)
	}
}

func TestSplitTitleAuthor(t *testing.T) {
	tests := []struct {
		text       string
		wantTitle  string
		wantAuthor string
	}{
		{"Frankenstein by Mary Shelley", "Frankenstein", "Mary Shelley"},
		{"Beowulf", "Beowulf", models.UnknownAuthor},
		{"  Padded Title   by   Padded Author  ", "Padded Title", "Padded Author"},
		{"A Story by B by C", "A Story", "B by C"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			title, author := splitTitleAuthor(tt.text)
			if title != tt.wantTitle || author != tt.wantAuthor {
				t.Errorf("splitTitleAuthor(%q) = %q / %q, want %q / %q",
					tt.text, title, author, tt.wantTitle, tt.wantAuthor)
			}
		})
	}
}

func TestTopListCapsEntries(t *testing.T) {
	entries := make([]string, 30)
	for i := range entries {
		entries[i] = fmt.Sprintf(`<li><a href="/ebooks/%d">Book %d by Author %d</a></li>`, i, i, i)
	}

	books, err := NewTopList().Extract(rankedList(entries...), listOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != maxListEntries {
		t.Fatalf("expected %d records, got %d", maxListEntries, len(books))
	}
}

func TestTopListSkipsLinklessEntries(t *testing.T) {
	page := rankedList(
		`<li><a href="/ebooks/1">First by A</a></li>`,
		`<li>Plain text entry</li>`,
		`<li><a href="/ebooks/3">Third by C</a></li>`,
	)

	books, err := NewTopList().Extract(page, listOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("expected 2 records, got %d", len(books))
	}
	if books[0].Title != "First" || books[1].Title != "Third" {
		t.Errorf("unexpected titles: %q, %q", books[0].Title, books[1].Title)
	}
}

func TestTopListUsesFirstList(t *testing.T) {
	page := []byte(`<html><body>
<ol><li><a href="/ebooks/1">Wanted by Someone</a></li></ol>
<ol><li><a href="/ebooks/2">Ignored by Someone Else</a></li></ol>
</body></html>`)

	books, err := NewTopList().Extract(page, listOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 record, got %d", len(books))
	}
	if books[0].Title != "Wanted" {
		t.Errorf("title = %q, records must come from the first list only", books[0].Title)
	}
}

func TestTopListNoList(t *testing.T) {
	books, err := NewTopList().Extract([]byte("<html><body><ul><li>not ranked</li></ul></body></html>"), listOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty result, got %d records", len(books))
	}
}
