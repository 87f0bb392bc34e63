package infra_sentiment_remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

const defaultTimeout = 10 * time.Second

// Driver calls a hosted detect-sentiment endpoint. Any transport, auth or
// service error is returned as-is; the caller treats every failure as
// "no result" and falls back.
type Driver struct {
	url    string
	client *http.Client
}

type requestDTO struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type responseDTO struct {
	Sentiment string             `json:"sentiment"`
	Scores    map[string]float64 `json:"sentiment_scores"`
}

func New(url string) *Driver {
	return &Driver{
		url: url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (d *Driver) Classify(ctx context.Context, text string) (model.SentimentLabel, model.SentimentScores, error) {
	body, err := json.Marshal(requestDTO{
		Text:     text,
		Language: "en",
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("detect sentiment call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("detect sentiment call returned status %d", resp.StatusCode)
	}

	var dto responseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return "", nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return model.SentimentLabel(dto.Sentiment), model.SentimentScores(dto.Scores), nil
}
