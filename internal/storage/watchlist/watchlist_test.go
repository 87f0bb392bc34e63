package storage_watchlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infra_memory_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/infra/memory/watchlist"
	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

type fakeRepo struct {
	lists      map[string][]string
	failing    bool
	storeCalls int
}

func newFakeRepo(failing bool) *fakeRepo {
	return &fakeRepo{
		lists:   make(map[string][]string),
		failing: failing,
	}
}

func (r *fakeRepo) Load(ctx context.Context, username model.Username) ([]string, error) {
	if r.failing {
		return nil, errors.New("store unreachable")
	}
	return r.lists[username], nil
}

func (r *fakeRepo) Store(ctx context.Context, entry model.WatchlistEntry) error {
	r.storeCalls++
	if r.failing {
		return errors.New("store unreachable")
	}
	r.lists[entry.Username] = append(r.lists[entry.Username], entry.Movie)
	return nil
}

type fakeCounter struct {
	fallbacks int
}

func (c *fakeCounter) IncStoreFallbacks() {
	c.fallbacks++
}

func TestAddThenView_DurablePath(t *testing.T) {
	repo := newFakeRepo(false)
	s := New(repo, infra_memory_watchlist.New())

	watchlist := s.Add(context.Background(), "alice", "Up")
	assert.Contains(t, watchlist, "Up")

	assert.Contains(t, s.View(context.Background(), "alice"), "Up")
}

func TestAddThenView_FallbackPath(t *testing.T) {
	repo := newFakeRepo(true)
	counter := &fakeCounter{}
	s := New(repo, infra_memory_watchlist.New(), WithFallbackCounter(counter))

	watchlist := s.Add(context.Background(), "alice", "Up")

	assert.Contains(t, watchlist, "Up")
	assert.Contains(t, s.View(context.Background(), "alice"), "Up")
	assert.Positive(t, counter.fallbacks)
}

func TestAdd_FallbackCountedOncePerDegradedAdd(t *testing.T) {
	repo := newFakeRepo(true)
	counter := &fakeCounter{}
	s := New(repo, infra_memory_watchlist.New(), WithFallbackCounter(counter))

	s.Add(context.Background(), "alice", "Up")
	assert.Equal(t, 1, counter.fallbacks)

	s.Add(context.Background(), "alice", "Titanic")
	assert.Equal(t, 2, counter.fallbacks)
}

func TestAdd_DurablePathDoesNotDedup(t *testing.T) {
	repo := newFakeRepo(false)
	s := New(repo, infra_memory_watchlist.New())

	s.Add(context.Background(), "alice", "Up")
	watchlist := s.Add(context.Background(), "alice", "Up")

	assert.Equal(t, []string{"Up", "Up"}, watchlist)
}

func TestAdd_FallbackPathDedups(t *testing.T) {
	repo := newFakeRepo(true)
	s := New(repo, infra_memory_watchlist.New())

	s.Add(context.Background(), "alice", "Up")
	watchlist := s.Add(context.Background(), "alice", "Up")

	assert.Equal(t, []string{"Up"}, watchlist)
}

func TestView_UsersAreIsolated(t *testing.T) {
	repo := newFakeRepo(false)
	s := New(repo, infra_memory_watchlist.New())

	s.Add(context.Background(), "alice", "Up")
	s.Add(context.Background(), "bob", "Titanic")

	require.Equal(t, []string{"Up"}, s.View(context.Background(), "alice"))
	require.Equal(t, []string{"Titanic"}, s.View(context.Background(), "bob"))
}
