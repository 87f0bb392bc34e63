package infra_sentiment_local

import (
	"context"
	"fmt"

	cdipaolo "github.com/cdipaolo/sentiment"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Driver classifies with the cdipaolo naive-bayes model restored at
// startup. The model is binary, so it never answers neutral or mixed and
// carries no score distribution.
type Driver struct {
	model cdipaolo.Models
}

func New() (*Driver, error) {
	m, err := cdipaolo.Restore()
	if err != nil {
		return nil, fmt.Errorf("failed to restore sentiment model: %w", err)
	}
	return &Driver{model: m}, nil
}

func (d *Driver) Classify(ctx context.Context, text string) (model.SentimentLabel, model.SentimentScores, error) {
	analysis := d.model.SentimentAnalysis(text, cdipaolo.English)
	if analysis.Score == 1 {
		return model.SentimentPositive, model.SentimentScores{}, nil
	}
	return model.SentimentNegative, model.SentimentScores{}, nil
}
