// internal/extract/extract.go
package extract

import (
	"github.com/shelfwatch/harvest/pkg/models"
)

// Extractor turns one fetched payload into normalized book records.
//
// Implementations are fault-tolerant per item: a malformed entry is logged
// and skipped, and a payload missing the expected structure degrades to an
// empty slice. A non-nil error means the payload itself could not be
// decoded; the orchestrator logs it and the task contributes zero records.
type Extractor interface {
	// Extract parses body and returns the records it holds, in document
	// order. Relative links are resolved against originURL.
	Extract(body []byte, originURL string) ([]models.Book, error)

	// Source identifies which upstream this extractor handles.
	Source() models.SourceID
}
