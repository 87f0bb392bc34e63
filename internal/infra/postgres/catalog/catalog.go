package infra_postgres_catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Load reads the whole movies table. The catalog is reference data, read
// once at startup.
func (r *Repository) Load(ctx context.Context) ([]catalog.Entry, error) {
	query := `
		SELECT title, moods, sentiments
		FROM movies
	`

	var entriesDB []entryDB
	if err := r.db.SelectContext(ctx, &entriesDB, query); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	entries := make([]catalog.Entry, len(entriesDB))
	for i, e := range entriesDB {
		entries[i] = e.ToDomain()
	}
	return entries, nil
}
