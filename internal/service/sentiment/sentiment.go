package sentiment

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Classifier is a primary classification backend (hosted service or local
// model). Scores are expected fractional in [0, 1].
type Classifier interface {
	Classify(ctx context.Context, text string) (model.SentimentLabel, model.SentimentScores, error)
}

// FallbackCounter is notified whenever the primary classifier is skipped
// or fails and the keyword fallback answers instead.
type FallbackCounter interface {
	IncSentimentFallbacks()
}

// Service classifies review text. Empty text short-circuits to neutral
// without touching the primary classifier. A primary failure is absorbed
// once and answered by the keyword lexicon, never retried.
type Service struct {
	primary Classifier
	lexicon Lexicon
	logger  *slog.Logger
	metrics FallbackCounter
}

type ServiceOption func(*Service)

func WithPrimary(c Classifier) ServiceOption {
	return func(s *Service) {
		s.primary = c
	}
}

func WithLexicon(l Lexicon) ServiceOption {
	return func(s *Service) {
		s.lexicon = l
	}
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithFallbackCounter(m FallbackCounter) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(opts ...ServiceOption) *Service {
	s := &Service{
		lexicon: DefaultLexicon(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Classify(ctx context.Context, text string) (model.SentimentLabel, model.SentimentScores) {
	if text == "" {
		return model.SentimentNeutral, model.SentimentScores{}
	}

	if s.primary != nil {
		label, scores, err := s.primary.Classify(ctx, text)
		if err == nil {
			return normalizeLabel(label), normalizeScores(scores)
		}
		s.logger.Warn("primary sentiment classifier failed, using keyword fallback",
			slog.String("error", err.Error()),
		)
	}

	if s.metrics != nil {
		s.metrics.IncSentimentFallbacks()
	}
	return s.lexicon.Classify(text), model.SentimentScores{}
}

func normalizeLabel(label model.SentimentLabel) model.SentimentLabel {
	switch model.SentimentLabel(strings.ToLower(string(label))) {
	case model.SentimentPositive:
		return model.SentimentPositive
	case model.SentimentNegative:
		return model.SentimentNegative
	case model.SentimentMixed:
		return model.SentimentMixed
	default:
		return model.SentimentNeutral
	}
}

// normalizeScores converts fractional confidences to percentages rounded
// to 2 decimals, with lowercase score names.
func normalizeScores(scores model.SentimentScores) model.SentimentScores {
	normalized := make(model.SentimentScores, len(scores))
	for name, v := range scores {
		normalized[strings.ToLower(name)] = math.Round(v*100*100) / 100
	}
	return normalized
}
