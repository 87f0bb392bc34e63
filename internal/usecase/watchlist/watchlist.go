package usecase_watchlist

import (
	"context"
	"errors"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

var ErrMovieRequired = errors.New("movie required")

type WatchlistStorage interface {
	View(ctx context.Context, username model.Username) []string
	Add(ctx context.Context, username model.Username, movie string) []string
}

type Usecase struct {
	storage WatchlistStorage
}

func New(storage WatchlistStorage) *Usecase {
	return &Usecase{
		storage: storage,
	}
}

func (u *Usecase) View(ctx context.Context, username model.Username) []string {
	return u.storage.View(ctx, username)
}

// Add validates the movie field and returns the updated watchlist.
// Nothing is written when validation fails.
func (u *Usecase) Add(ctx context.Context, username model.Username, movie string) ([]string, error) {
	if movie == "" {
		return nil, ErrMovieRequired
	}
	return u.storage.Add(ctx, username, movie), nil
}
