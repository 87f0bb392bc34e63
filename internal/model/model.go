package model

import "time"

type Username = string

const GuestUsername Username = "guest"

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentMixed    SentimentLabel = "mixed"
)

// SentimentScores maps a score name to a percentage in [0, 100].
type SentimentScores map[string]float64

type Review struct {
	ReviewID  string
	Username  Username
	Movie     string
	Text      string
	Sentiment SentimentLabel
	Scores    SentimentScores
	CreatedAt time.Time
}

type WatchlistEntry struct {
	Username Username
	Movie    string
	AddedAt  time.Time
}
