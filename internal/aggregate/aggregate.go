// internal/aggregate/aggregate.go
package aggregate

import (
	"sort"

	"github.com/shelfwatch/harvest/pkg/models"
)

// SourceCounts tallies records per source.
func SourceCounts(books []models.Book) map[models.SourceID]int {
	counts := make(map[models.SourceID]int, 3)
	for _, b := range books {
		counts[b.Source]++
	}
	return counts
}

// PriceComparison partitions priced records into groups keyed by exact
// title equality and sorts each group ascending by price. Records without
// a price are excluded. Titles differing in case or whitespace form
// distinct groups. Equal prices keep their input order, so repeated runs
// over the same collection produce identical groups.
func PriceComparison(books []models.Book) map[string][]models.Book {
	groups := make(map[string][]models.Book)
	for _, b := range books {
		if b.Price == nil {
			continue
		}
		groups[b.Title] = append(groups[b.Title], b)
	}

	for title, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return *group[i].Price < *group[j].Price
		})
		groups[title] = group
	}
	return groups
}
