package infra_redis_watchlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Driver keeps one list of JSON-encoded entries per user under
// <prefix>:<username>. The put path appends unconditionally; the store
// performs no dedup check.
type Driver struct {
	client *redis.Client
	prefix string
}

type entryDB struct {
	Username string `json:"username"`
	Movie    string `json:"movie"`
	AddedAt  string `json:"added_at"`
}

func New(client *redis.Client, prefix string) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Load(ctx context.Context, username model.Username) ([]string, error) {
	items, err := d.client.LRange(d.key(username), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	movies := make([]string, 0, len(items))
	for _, item := range items {
		var e entryDB
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("failed to decode watchlist entry: %w", err)
		}
		movies = append(movies, e.Movie)
	}
	return movies, nil
}

func (d *Driver) Store(ctx context.Context, entry model.WatchlistEntry) error {
	b, err := json.Marshal(entryDB{
		Username: entry.Username,
		Movie:    entry.Movie,
		AddedAt:  entry.AddedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode watchlist entry: %w", err)
	}

	if err := d.client.RPush(d.key(entry.Username), b).Err(); err != nil {
		return fmt.Errorf("failed to store watchlist entry: %w", err)
	}
	return nil
}

func (d *Driver) key(username model.Username) string {
	return d.prefix + ":" + username
}
