package usecase_review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (model.SentimentLabel, model.SentimentScores)
}

type ReviewRepository interface {
	Save(ctx context.Context, r model.Review) error
}

type Recommender interface {
	Personalized(title string, label model.SentimentLabel) []catalog.Entry
}

// Result is the outcome of one analyze action. Saved reports whether the
// review reached the durable store; reviews have no in-memory fallback.
type Result struct {
	Username    model.Username
	Movie       string
	Sentiment   model.SentimentLabel
	Scores      model.SentimentScores
	Suggestions []catalog.Entry
	Saved       bool
	ReviewID    string
}

type Usecase struct {
	classifier  Classifier
	reviews     ReviewRepository
	recommender Recommender
	logger      *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(classifier Classifier, reviews ReviewRepository, recommender Recommender, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		classifier:  classifier,
		reviews:     reviews,
		recommender: recommender,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Analyze classifies the review text, persists the review best-effort and
// picks personalized suggestions. Persistence failure never changes the
// already-computed sentiment or the suggestions.
func (u *Usecase) Analyze(ctx context.Context, username model.Username, movie, text string) Result {
	label, scores := u.classifier.Classify(ctx, text)

	res := Result{
		Username:    username,
		Movie:       movie,
		Sentiment:   label,
		Scores:      scores,
		Suggestions: []catalog.Entry{},
	}

	if text != "" {
		review := model.Review{
			ReviewID:  uuid.NewString(),
			Username:  username,
			Movie:     movie,
			Text:      text,
			Sentiment: label,
			Scores:    scores,
			CreatedAt: time.Now().UTC(),
		}
		if err := u.reviews.Save(ctx, review); err != nil {
			u.logger.Warn("review not saved",
				slog.String("username", username),
				slog.String("movie", movie),
				slog.String("error", err.Error()),
			)
		} else {
			res.Saved = true
			res.ReviewID = review.ReviewID
		}
	}

	if movie != "" && text != "" {
		res.Suggestions = u.recommender.Personalized(movie, label)
	}

	return res
}
