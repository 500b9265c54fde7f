package models

import "fmt"

type SentimentLabel int

const (
	Neutral SentimentLabel = iota
	Positive
	Negative
)

var labelNames = map[SentimentLabel]string{
	Positive: "Positive",
	Neutral:  "Neutral",
	Negative: "Negative",
}

func (l SentimentLabel) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("SentimentLabel(%d)", int(l))
}

// MarshalText lets json and yaml encode the label by name.
func (l SentimentLabel) MarshalText() ([]byte, error) {
	if _, ok := labelNames[l]; !ok {
		return nil, fmt.Errorf("unknown sentiment label %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *SentimentLabel) UnmarshalText(b []byte) error {
	for label, name := range labelNames {
		if name == string(b) {
			*l = label
			return nil
		}
	}
	return fmt.Errorf("unknown sentiment label %q", string(b))
}

type SentimentResult struct {
	Label SentimentLabel `json:"label" yaml:"label"`
	Score float64        `json:"score" yaml:"score"`
}
