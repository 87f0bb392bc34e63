package infra_redis_review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Driver keeps one hash of review_id to JSON-encoded review per user
// under <prefix>:<username>. Reviews are immutable once stored.
type Driver struct {
	client *redis.Client
	prefix string
}

type reviewDB struct {
	Username  string             `json:"username"`
	ReviewID  string             `json:"review_id"`
	Movie     string             `json:"movie"`
	Review    string             `json:"review"`
	Sentiment string             `json:"sentiment"`
	Scores    map[string]float64 `json:"sentiment_scores"`
	CreatedAt string             `json:"created_at"`
}

func New(client *redis.Client, prefix string) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Save(ctx context.Context, r model.Review) error {
	b, err := json.Marshal(reviewDB{
		Username:  r.Username,
		ReviewID:  r.ReviewID,
		Movie:     r.Movie,
		Review:    r.Text,
		Sentiment: string(r.Sentiment),
		Scores:    r.Scores,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}

	if err := d.client.HSet(d.key(r.Username), r.ReviewID, b).Err(); err != nil {
		return fmt.Errorf("failed to store review: %w", err)
	}
	return nil
}

func (d *Driver) key(username model.Username) string {
	return d.prefix + ":" + username
}
