package storage_watchlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

type Repository interface {
	Load(ctx context.Context, username model.Username) ([]string, error)
	Store(ctx context.Context, entry model.WatchlistEntry) error
}

// FallbackStore is the in-process degraded-mode watchlist. It cannot fail.
type FallbackStore interface {
	Load(username model.Username) []string
	Store(username model.Username, movie string)
}

type FallbackCounter interface {
	IncStoreFallbacks()
}

// Storage composes the durable repository with the in-process fallback.
// Store errors are absorbed here: reads answer from the fallback map,
// writes land in it. Callers never see an error.
type Storage struct {
	repo     Repository
	fallback FallbackStore
	logger   *slog.Logger
	metrics  FallbackCounter
}

type StorageOption func(*Storage)

func WithLogger(logger *slog.Logger) StorageOption {
	return func(s *Storage) {
		s.logger = logger
	}
}

func WithFallbackCounter(m FallbackCounter) StorageOption {
	return func(s *Storage) {
		s.metrics = m
	}
}

func New(repo Repository, fallback FallbackStore, opts ...StorageOption) *Storage {
	s := &Storage{
		repo:     repo,
		fallback: fallback,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) View(ctx context.Context, username model.Username) []string {
	movies, err := s.repo.Load(ctx, username)
	if err != nil {
		s.logger.Warn("watchlist load failed, using in-memory fallback",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		s.countFallback()
		return s.fallback.Load(username)
	}
	if movies == nil {
		movies = []string{}
	}
	return movies
}

// Add writes the entry durably, or into the fallback map when the store
// is unreachable, then returns the updated watchlist.
func (s *Storage) Add(ctx context.Context, username model.Username, movie string) []string {
	entry := model.WatchlistEntry{
		Username: username,
		Movie:    movie,
		AddedAt:  time.Now().UTC(),
	}
	if err := s.repo.Store(ctx, entry); err != nil {
		s.logger.Warn("watchlist store failed, using in-memory fallback",
			slog.String("username", username),
			slog.String("movie", movie),
			slog.String("error", err.Error()),
		)
		s.countFallback()
		s.fallback.Store(username, movie)
		return s.fallback.Load(username)
	}
	return s.View(ctx, username)
}

func (s *Storage) countFallback() {
	if s.metrics != nil {
		s.metrics.IncStoreFallbacks()
	}
}
