package sentiment

import (
	"strings"

	"github.com/kkcodebase/movie-mood-predictor/internal/model"
)

// Lexicon is the word-list policy of the keyword classifier. Matching is
// substring containment over the lowercased text, not whole-word.
type Lexicon struct {
	Positive []string
	Negative []string
}

// DefaultLexicon is the union of the word lists that were historically
// scattered across handlers, under one lowercase taxonomy.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"good", "great", "awesome", "amazing", "love", "loved",
			"excellent", "wonderful", "funny", "hilarious", "fantastic", "like",
		},
		Negative: []string{
			"bad", "boring", "worst", "hate", "hated", "awful",
			"poor", "terrible", "waste", "disappointing",
		},
	}
}

// Classify counts matches from each list and picks the majority side.
// Equal counts (including zero matches) yield neutral.
func (l Lexicon) Classify(text string) model.SentimentLabel {
	t := strings.ToLower(text)

	var pos, neg int
	for _, w := range l.Positive {
		if strings.Contains(t, w) {
			pos++
		}
	}
	for _, w := range l.Negative {
		if strings.Contains(t, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return model.SentimentPositive
	case neg > pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
