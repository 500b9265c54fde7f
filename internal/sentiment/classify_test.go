package sentiment

import (
	"math"
	"testing"

	"github.com/spacesedan/aspectsense/internal/models"
	"github.com/stretchr/testify/assert"
)

type fixedScorer struct {
	score float64
	seen  []string
}

func (f *fixedScorer) Compound(text string) float64 {
	f.seen = append(f.seen, text)
	return f.score
}

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  models.SentimentLabel
	}{
		{1, models.Positive},
		{0.5, models.Positive},
		{0.05, models.Positive},
		{0.0499, models.Neutral},
		{0, models.Neutral},
		{-0.0499, models.Neutral},
		{-0.05, models.Negative},
		{-0.7, models.Negative},
		{-1, models.Negative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %v", tt.score)
	}
}

func TestClassify_NaNIsNeutral(t *testing.T) {
	assert.Equal(t, models.Neutral, Classify(math.NaN()))
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, models.Positive, Classify(0.05))
		assert.Equal(t, models.Negative, Classify(-0.05))
	}
}

func TestClassifySentiment_UsesScorer(t *testing.T) {
	scorer := &fixedScorer{score: -0.3}
	c := NewClassifier(scorer)

	result := c.ClassifySentiment("the battery died")

	assert.Equal(t, models.SentimentResult{Label: models.Negative, Score: -0.3}, result)
	assert.Equal(t, []string{"the battery died"}, scorer.seen)
}

func TestClassifySentiment_Idempotent(t *testing.T) {
	c := NewClassifier(&fixedScorer{score: 0.2})

	first := c.ClassifySentiment("nice")
	second := c.ClassifySentiment("nice")

	assert.Equal(t, first, second)
}

func TestClassifySentiment_MarkdownStripping(t *testing.T) {
	scorer := &fixedScorer{score: 0.6}
	c := NewClassifier(scorer, WithMarkdownStripping(true))

	c.ClassifySentiment("**really** [great](https://example.com/review) phone")

	assert.Equal(t, []string{"really great phone"}, scorer.seen)
}

func TestClassifySentiment_MarkdownStrippingDisabled(t *testing.T) {
	scorer := &fixedScorer{}
	c := NewClassifier(scorer, WithMarkdownStripping(true), WithMarkdownStripping(false))

	c.ClassifySentiment("**bold**")

	assert.Equal(t, []string{"**bold**"}, scorer.seen)
}
