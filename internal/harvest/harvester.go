// internal/harvest/harvester.go
package harvest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/pkg/models"
)

// Fetcher is the retrieval dependency shared by every task.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Harvester fans a fixed task table out over the shared fetcher and
// flattens the per-task results into one collection.
type Harvester struct {
	fetcher Fetcher
	tasks   []Task
	onDone  func(Task)
}

// New creates a Harvester over a static task table.
func New(fetcher Fetcher, tasks []Task) *Harvester {
	return &Harvester{
		fetcher: fetcher,
		tasks:   tasks,
	}
}

// OnTaskDone registers a callback invoked once per task reaching a terminal
// state, successful or not. The CLI uses it to drive its progress bar.
func (h *Harvester) OnTaskDone(fn func(Task)) {
	h.onDone = fn
}

// taskResult carries one task's outcome to the fan-in point. A failed task
// contributes no records; err exists for the failure log only.
type taskResult struct {
	task  Task
	books []models.Book
	err   error
}

// Run dispatches every task concurrently and returns the flattened record
// collection once all of them reach a terminal state. A failing task is
// logged and contributes zero records; it never cancels its siblings, and
// Run always returns normally.
//
// Records from one task keep their extraction order; ordering across tasks
// is whatever the completion order happened to be.
func (h *Harvester) Run(ctx context.Context) []models.Book {
	start := time.Now()

	results := make(chan taskResult, len(h.tasks))
	var wg sync.WaitGroup

	for _, task := range h.tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			res := h.runTask(ctx, t)
			if h.onDone != nil {
				h.onDone(t)
			}
			results <- res
		}(task)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single writer: the collection is only assembled here, after each
	// task has finished touching its own slice.
	var books []models.Book
	failures := 0
	for res := range results {
		if res.err != nil {
			failures++
			log.Warn().
				Str("source", string(res.task.Source)).
				Str("label", res.task.Label).
				Str("url", res.task.URL).
				Err(res.err).
				Msg("Task failed")
			continue
		}
		books = append(books, res.books...)
	}

	log.Info().
		Int("records", len(books)).
		Int("tasks", len(h.tasks)).
		Int("failures", failures).
		Dur("duration", time.Since(start)).
		Msg("Harvest completed")

	return books
}

// runTask composes one fetch with its extraction. A panic anywhere inside
// is recovered into a failed result so a defective task cannot take down
// the run.
func (h *Harvester) runTask(ctx context.Context, t Task) (res taskResult) {
	res = taskResult{task: t}
	defer func() {
		if r := recover(); r != nil {
			res.books = nil
			res.err = fmt.Errorf("task panic: %v", r)
		}
	}()

	body, err := h.fetcher.Fetch(ctx, t.URL)
	if err != nil {
		res.err = err
		return res
	}

	books, err := t.Extractor.Extract(body, t.URL)
	if err != nil {
		res.err = err
		return res
	}

	res.books = books
	return res
}
