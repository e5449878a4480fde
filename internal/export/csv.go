// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/pkg/models"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"title", "author", "price", "availability", "url",
	"source", "isbn", "rating", "retrieved_at",
}

// SaveCSV writes the records to a CSV file with a fixed header row. An
// empty collection logs a warning and produces no file.
func SaveCSV(books []models.Book, path string) error {
	if len(books) == 0 {
		log.Warn().Str("path", path).Msg("No data to save")
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return err
	}
	for _, b := range books {
		row := []string{
			b.Title,
			b.Author,
			formatOptional(b.Price),
			b.Availability,
			b.URL,
			string(b.Source),
			b.ISBN,
			formatOptional(b.Rating),
			b.RetrievedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	log.Debug().Int("records", len(books)).Str("path", path).Msg("CSV export written")
	return nil
}

// formatOptional renders an optional numeric field. Absent values become an
// empty cell so they stay distinguishable from a real zero.
func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
