package analysis

import (
	"github.com/spacesedan/aspectsense/internal/models"
)

type SentimentClassifier interface {
	ClassifySentiment(text string) models.SentimentResult
}

type AspectExtractor interface {
	ExtractAspects(text string) []string
}

// Analyzer runs both core functions for one "analyze" action.
type Analyzer struct {
	sentiment SentimentClassifier
	aspects   AspectExtractor
}

func NewAnalyzer(sentiment SentimentClassifier, aspects AspectExtractor) *Analyzer {
	return &Analyzer{sentiment: sentiment, aspects: aspects}
}

func (a *Analyzer) Analyze(text string) models.AnalysisResult {
	return models.AnalysisResult{
		Text:      text,
		Sentiment: a.sentiment.ClassifySentiment(text),
		Aspects:   a.aspects.ExtractAspects(text),
	}
}
