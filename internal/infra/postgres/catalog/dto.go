package infra_postgres_catalog

import (
	"github.com/lib/pq"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
)

type entryDB struct {
	Title      string         `db:"title"`
	Moods      pq.StringArray `db:"moods"`
	Sentiments pq.StringArray `db:"sentiments"`
}

func (e *entryDB) ToDomain() catalog.Entry {
	return catalog.Entry{
		Title:      e.Title,
		Moods:      []string(e.Moods),
		Sentiments: []string(e.Sentiments),
	}
}
