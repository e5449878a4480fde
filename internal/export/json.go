// internal/export/json.go
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/pkg/models"
)

// SaveJSON writes an indented JSON export of the records. An empty
// collection logs a warning and produces no file.
func SaveJSON(books []models.Book, path string) error {
	if len(books) == 0 {
		log.Warn().Str("path", path).Msg("No data to save")
		return nil
	}

	content, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}

	log.Debug().Int("records", len(books)).Str("path", path).Msg("JSON export written")
	return nil
}
