package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/aspectsense/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const NoAspectsText = "No aspects found"

var ErrUnknownFormat = errors.New("unknown output format")

// indicators mirrors the three emoji boxes, in label order.
var indicators = []struct {
	label models.SentimentLabel
	emoji string
}{
	{models.Positive, "\U0001F600"},
	{models.Neutral, "\U0001F610"},
	{models.Negative, "\U0001F615"},
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func Render(w io.Writer, format Format, r models.AnalysisResult) error {
	if r.Aspects == nil {
		r.Aspects = []string{}
	}

	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		return json.NewEncoder(w).Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func AspectsLine(aspects []string) string {
	if len(aspects) == 0 {
		return NoAspectsText
	}
	return strings.Join(aspects, ", ")
}

func IndicatorRow(label models.SentimentLabel) string {
	boxes := make([]string, 0, len(indicators))
	for _, ind := range indicators {
		if ind.label == label {
			boxes = append(boxes, "["+ind.emoji+"]")
		} else {
			boxes = append(boxes, " "+ind.emoji+" ")
		}
	}
	return strings.Join(boxes, " ")
}

func renderText(w io.Writer, r models.AnalysisResult) error {
	_, err := fmt.Fprintf(w, "Aspects: %s\nResult:  %s (%.4f)\n%s\n",
		AspectsLine(r.Aspects),
		r.Sentiment.Label,
		r.Sentiment.Score,
		IndicatorRow(r.Sentiment.Label))
	return err
}
