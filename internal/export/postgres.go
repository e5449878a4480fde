// internal/export/postgres.go
package export

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/shelfwatch/harvest/pkg/models"
)

const booksDDL = `
CREATE TABLE IF NOT EXISTS books (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	author       TEXT NOT NULL,
	price        DOUBLE PRECISION,
	availability TEXT NOT NULL DEFAULT '',
	url          TEXT NOT NULL,
	source       TEXT NOT NULL,
	isbn         TEXT,
	rating       DOUBLE PRECISION,
	retrieved_at TIMESTAMPTZ NOT NULL,
	UNIQUE (source, url, title)
)`

const insertBook = `
INSERT INTO books (title, author, price, availability, url, source, isbn, rating, retrieved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (source, url, title) DO NOTHING`

// SavePostgres inserts the records into the books table, creating it when
// missing. Records already present, keyed by source, URL and title, are
// left untouched, so re-running the same harvest inserts nothing new. An
// empty collection logs a warning and opens no connection.
func SavePostgres(ctx context.Context, dsn string, books []models.Book) error {
	if len(books) == 0 {
		log.Warn().Msg("No data to save")
		return nil
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, booksDDL); err != nil {
		return fmt.Errorf("ensure books table: %w", err)
	}

	batch := &pgx.Batch{}
	for _, b := range books {
		var isbn *string
		if b.ISBN != "" {
			isbn = &b.ISBN
		}
		batch.Queue(insertBook,
			b.Title, b.Author, b.Price, b.Availability, b.URL,
			string(b.Source), isbn, b.Rating, b.RetrievedAt)
	}

	results := pool.SendBatch(ctx, batch)
	var inserted int64
	for range books {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return fmt.Errorf("insert record: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	log.Info().
		Int("records", len(books)).
		Int64("inserted", inserted).
		Msg("Postgres export completed")
	return nil
}
