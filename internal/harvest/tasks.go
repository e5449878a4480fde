// internal/harvest/tasks.go
package harvest

import (
	"fmt"
	"net/url"

	"github.com/shelfwatch/harvest/internal/config"
	"github.com/shelfwatch/harvest/internal/extract"
	"github.com/shelfwatch/harvest/pkg/models"
)

// Task is one unit of harvest work: a single fetch composed with the
// extractor for its source.
type Task struct {
	Source    models.SourceID
	Label     string
	URL       string
	Extractor extract.Extractor
}

// Tasks builds the static task table for one run: the configured catalog
// pages, one search call per query, and the ranked list. The table is fixed
// before dispatch; nothing is discovered or queued at runtime.
func Tasks(cfg *config.Config) []Task {
	tasks := make([]Task, 0, cfg.CatalogPages+len(cfg.SearchQueries)+1)

	catalog := extract.NewCatalog()
	for page := 1; page <= cfg.CatalogPages; page++ {
		tasks = append(tasks, Task{
			Source:    models.SourceCatalog,
			Label:     fmt.Sprintf("catalog page %d", page),
			URL:       fmt.Sprintf("%s/catalogue/page-%d.html", cfg.CatalogBaseURL, page),
			Extractor: catalog,
		})
	}

	search := extract.NewSearchAPI()
	for _, query := range cfg.SearchQueries {
		tasks = append(tasks, Task{
			Source:    models.SourceSearchAPI,
			Label:     fmt.Sprintf("search %q", query),
			URL:       fmt.Sprintf("%s/search.json?q=%s&limit=%d", cfg.SearchBaseURL, url.QueryEscape(query), extract.MaxSearchDocs),
			Extractor: search,
		})
	}

	tasks = append(tasks, Task{
		Source:    models.SourceRankedList,
		Label:     "top downloads",
		URL:       cfg.RankedListBaseURL + "/browse/scores/top",
		Extractor: extract.NewTopList(),
	})

	return tasks
}
