package aspects

import (
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tags with prose's averaged perceptron model. The model is
// loaded once and shared by every call.
type ProseTagger struct {
	model *prose.Model
}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{model: prose.ModelFromData("aspectsense")}
}

func (p *ProseTagger) Tag(text string) []TaggedToken {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(p.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		slog.Warn("[ProseTagger] Failed to tag text", slog.String("error", err.Error()))
		return nil
	}

	tokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged
}
