package models

// AnalysisResult is everything the view needs for one "analyze" action.
type AnalysisResult struct {
	Text      string          `json:"text" yaml:"text"`
	Sentiment SentimentResult `json:"sentiment" yaml:"sentiment"`
	Aspects   []string        `json:"aspects" yaml:"aspects"`
}

func (r AnalysisResult) HasAspects() bool {
	return len(r.Aspects) > 0
}
