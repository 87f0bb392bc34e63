package recommend

import (
	"math/rand"
	"sync"
	"time"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

const (
	moodSampleLimit         = 8
	personalizedSampleLimit = 5
)

// Engine picks suggestion subsets from the static catalog. Sampling is
// without replacement and intentionally non-deterministic; the rand
// source is injectable so tests can pin it.
type Engine struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

type EngineOption func(*Engine)

func WithRandSource(src rand.Source) EngineOption {
	return func(e *Engine) {
		e.rng = rand.New(src)
	}
}

func New(c *catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: c,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ByMood returns up to 8 catalog entries whose moods include the given
// mood (case-insensitive).
func (e *Engine) ByMood(mood string) []catalog.Entry {
	return e.sample(e.catalog.ByMood(mood), moodSampleLimit)
}

// Personalized returns up to 5 entries related to the reviewed movie.
// A positive review pulls movies sharing a mood with it, a negative one
// movies sharing none, anything else samples the whole catalog. Unknown
// titles yield an empty list.
func (e *Engine) Personalized(title string, label model.SentimentLabel) []catalog.Entry {
	reviewed, ok := e.catalog.ByTitle(title)
	if !ok {
		return []catalog.Entry{}
	}

	var candidates []catalog.Entry
	switch label {
	case model.SentimentPositive:
		for _, entry := range e.catalog.Entries() {
			if entry.SharesMood(reviewed.Moods) {
				candidates = append(candidates, entry)
			}
		}
	case model.SentimentNegative:
		for _, entry := range e.catalog.Entries() {
			if !entry.SharesMood(reviewed.Moods) {
				candidates = append(candidates, entry)
			}
		}
	default:
		candidates = e.catalog.Entries()
	}

	return e.sample(candidates, personalizedSampleLimit)
}

func (e *Engine) sample(entries []catalog.Entry, limit int) []catalog.Entry {
	picked := make([]catalog.Entry, len(entries))
	copy(picked, entries)

	e.mu.Lock()
	e.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	e.mu.Unlock()

	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}
