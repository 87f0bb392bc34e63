package usecase_watchlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

type fakeStorage struct {
	lists    map[string][]string
	addCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{lists: make(map[string][]string)}
}

func (s *fakeStorage) View(ctx context.Context, username model.Username) []string {
	return s.lists[username]
}

func (s *fakeStorage) Add(ctx context.Context, username model.Username, movie string) []string {
	s.addCalls++
	s.lists[username] = append(s.lists[username], movie)
	return s.lists[username]
}

func TestAdd_EmptyMovieIsRejectedWithoutWrite(t *testing.T) {
	storage := newFakeStorage()
	uc := New(storage)

	_, err := uc.Add(context.Background(), "alice", "")

	assert.ErrorIs(t, err, ErrMovieRequired)
	assert.Zero(t, storage.addCalls)
}

func TestAdd_ReturnsUpdatedWatchlist(t *testing.T) {
	uc := New(newFakeStorage())

	watchlist, err := uc.Add(context.Background(), "alice", "Up")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Up"}, watchlist)
}
