package sentiment

import (
	"log/slog"

	"github.com/spacesedan/aspectsense/internal/models"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Classify maps a compound score onto a label. NaN is Neutral.
func Classify(score float64) models.SentimentLabel {
	switch {
	case score >= PositiveThreshold:
		return models.Positive
	case score <= NegativeThreshold:
		return models.Negative
	default:
		return models.Neutral
	}
}

type Classifier struct {
	scorer     PolarityScorer
	preprocess func(string) string
}

type ClassifierOption func(*Classifier)

// WithMarkdownStripping scores the plain text rendition of markdown input.
func WithMarkdownStripping(enabled bool) ClassifierOption {
	return func(c *Classifier) {
		if enabled {
			c.preprocess = ConvertMarkdownToText
		} else {
			c.preprocess = nil
		}
	}
}

func NewClassifier(scorer PolarityScorer, opts ...ClassifierOption) *Classifier {
	c := &Classifier{scorer: scorer}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Classifier) ClassifySentiment(text string) models.SentimentResult {
	if c.preprocess != nil {
		text = c.preprocess(text)
	}

	score := c.scorer.Compound(text)
	label := Classify(score)

	slog.Debug("[Sentiment] Classified text",
		slog.Float64("score", score),
		slog.String("label", label.String()))

	return models.SentimentResult{Label: label, Score: score}
}
