package usecase_review

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
	"github.com/kkcodebase/movie-mood-predictor/internal/model"
	"github.com/kkcodebase/movie-mood-predictor/internal/service/recommend"
	"github.com/kkcodebase/movie-mood-predictor/internal/service/sentiment"
)

type fakeReviewRepo struct {
	saved   []model.Review
	failing bool
}

func (r *fakeReviewRepo) Save(ctx context.Context, review model.Review) error {
	if r.failing {
		return errors.New("store unreachable")
	}
	r.saved = append(r.saved, review)
	return nil
}

func newUsecase(repo *fakeReviewRepo) *Usecase {
	engine := recommend.New(catalog.Default(), recommend.WithRandSource(rand.NewSource(1)))
	return New(sentiment.New(), repo, engine)
}

func TestAnalyze_SavesReviewAndSuggests(t *testing.T) {
	repo := &fakeReviewRepo{}
	uc := newUsecase(repo)

	res := uc.Analyze(context.Background(), "alice", "Up", "I loved it, amazing!")

	assert.Equal(t, model.SentimentPositive, res.Sentiment)
	assert.True(t, res.Saved)
	assert.NotEmpty(t, res.Suggestions)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, "alice", saved.Username)
	assert.Equal(t, "Up", saved.Movie)
	assert.Equal(t, model.SentimentPositive, saved.Sentiment)
	assert.False(t, saved.CreatedAt.IsZero())

	_, err := uuid.Parse(res.ReviewID)
	assert.NoError(t, err)
	assert.Equal(t, saved.ReviewID, res.ReviewID)
}

func TestAnalyze_PersistenceFailureKeepsSentiment(t *testing.T) {
	uc := newUsecase(&fakeReviewRepo{failing: true})

	res := uc.Analyze(context.Background(), "alice", "Up", "I loved it, amazing!")

	assert.Equal(t, model.SentimentPositive, res.Sentiment)
	assert.False(t, res.Saved)
	assert.Empty(t, res.ReviewID)
	assert.NotEmpty(t, res.Suggestions)
}

func TestAnalyze_EmptyTextSkipsPersistence(t *testing.T) {
	repo := &fakeReviewRepo{}
	uc := newUsecase(repo)

	res := uc.Analyze(context.Background(), "alice", "Up", "")

	assert.Equal(t, model.SentimentNeutral, res.Sentiment)
	assert.False(t, res.Saved)
	assert.Empty(t, res.Suggestions)
	assert.Empty(t, repo.saved)
}

func TestAnalyze_NoMovieSkipsSuggestions(t *testing.T) {
	repo := &fakeReviewRepo{}
	uc := newUsecase(repo)

	res := uc.Analyze(context.Background(), "alice", "", "terrible and boring")

	assert.Equal(t, model.SentimentNegative, res.Sentiment)
	assert.True(t, res.Saved)
	assert.Empty(t, res.Suggestions)
}
