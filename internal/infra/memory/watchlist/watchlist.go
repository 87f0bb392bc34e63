package infra_memory_watchlist

import (
	"sync"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Store is the process-lifetime fallback watchlist used while the durable
// store is unreachable. It is never reconciled back into the durable path.
type Store struct {
	mu    sync.Mutex
	lists map[model.Username][]string
}

func New() *Store {
	return &Store{
		lists: make(map[model.Username][]string),
	}
}

func (s *Store) Load(username model.Username) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	movies := make([]string, len(s.lists[username]))
	copy(movies, s.lists[username])
	return movies
}

// Store appends the movie unless it is already present. Unlike the
// durable path, the fallback dedups.
func (s *Store) Store(username model.Username, movie string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.lists[username] {
		if m == movie {
			return
		}
	}
	s.lists[username] = append(s.lists[username], movie)
}
