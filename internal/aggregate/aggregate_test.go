package aggregate

import (
	"reflect"
	"testing"

	"github.com/shelfwatch/harvest/pkg/models"
)

func TestSourceCounts(t *testing.T) {
	books := []models.Book{
		{Title: "A", Source: models.SourceCatalog},
		{Title: "B", Source: models.SourceCatalog},
		{Title: "C", Source: models.SourceSearchAPI},
		{Title: "D", Source: models.SourceRankedList},
		{Title: "E", Source: models.SourceCatalog},
	}

	counts := SourceCounts(books)

	want := map[models.SourceID]int{
		models.SourceCatalog:    3,
		models.SourceSearchAPI:  1,
		models.SourceRankedList: 1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestSourceCountsEmpty(t *testing.T) {
	if counts := SourceCounts(nil); len(counts) != 0 {
		t.Errorf("counts over no records = %v, want empty", counts)
	}
}

func TestPriceComparisonGrouping(t *testing.T) {
	books := []models.Book{
		// Higher price first to prove the group gets sorted.
		{Title: "Clean Code", Price: models.Float(34.50), Source: models.SourceRankedList},
		{Title: "Clean Code", Price: models.Float(29.99), Source: models.SourceCatalog},
		// Different case is a different title.
		{Title: "Clean code", Price: models.Float(19.99), Source: models.SourceCatalog},
		// No price, so no place in any group.
		{Title: "Clean Code", Source: models.SourceSearchAPI},
	}

	groups := PriceComparison(books)

	if len(groups) != 2 {
		t.Fatalf("group count = %d, want 2", len(groups))
	}

	clean := groups["Clean Code"]
	if len(clean) != 2 {
		t.Fatalf(`group "Clean Code" has %d records, want 2`, len(clean))
	}
	if *clean[0].Price != 29.99 || *clean[1].Price != 34.50 {
		t.Errorf("group prices = [%v, %v], want ascending [29.99, 34.50]", *clean[0].Price, *clean[1].Price)
	}

	if got := len(groups["Clean code"]); got != 1 {
		t.Errorf(`group "Clean code" has %d records, want a singleton`, got)
	}
}

func TestPriceComparisonStableOnTies(t *testing.T) {
	books := []models.Book{
		{Title: "Tie", Price: models.Float(9.99), URL: "http://a.test/"},
		{Title: "Tie", Price: models.Float(9.99), URL: "http://b.test/"},
	}

	group := PriceComparison(books)["Tie"]
	if len(group) != 2 {
		t.Fatalf("group size = %d, want 2", len(group))
	}
	if group[0].URL != "http://a.test/" || group[1].URL != "http://b.test/" {
		t.Errorf("equal prices reordered: [%s, %s]", group[0].URL, group[1].URL)
	}
}

func TestPriceComparisonIdempotent(t *testing.T) {
	books := []models.Book{
		{Title: "X", Price: models.Float(5), URL: "http://one.test/"},
		{Title: "X", Price: models.Float(3), URL: "http://two.test/"},
		{Title: "Y", Price: models.Float(7), URL: "http://three.test/"},
		{Title: "X", Price: models.Float(5), URL: "http://four.test/"},
	}
	input := make([]models.Book, len(books))
	copy(input, books)

	first := PriceComparison(books)
	second := PriceComparison(books)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated grouping diverged:\nfirst  = %v\nsecond = %v", first, second)
	}
	if !reflect.DeepEqual(books, input) {
		t.Errorf("grouping mutated its input")
	}
}

func TestPriceComparisonEmpty(t *testing.T) {
	if groups := PriceComparison(nil); len(groups) != 0 {
		t.Errorf("groups over no records = %v, want empty", groups)
	}
}
