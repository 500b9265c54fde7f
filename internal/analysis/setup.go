package analysis

import (
	"fmt"
	"log/slog"

	"github.com/spacesedan/aspectsense/internal/aspects"
	"github.com/spacesedan/aspectsense/internal/sentiment"
)

type Options struct {
	Grammar       string
	StripMarkdown  bool
}

// NewDefaultAnalyzer wires VADER scoring and prose tagging. A bad grammar is
// a startup fault.
func NewDefaultAnalyzer(opts Options) (*Analyzer, error) {
	rule := opts.Grammar
	if rule == "" {
		rule = aspects.DefaultGrammar
	}

	grammar, err := aspects.ParseGrammar(rule)
	if err != nil {
		return nil, fmt.Errorf("building aspect extractor: %w", err)
	}

	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer(),
		sentiment.WithMarkdownStripping(opts.StripMarkdown))
	extractor := aspects.NewExtractor(aspects.NewProseTagger(), grammar)

	slog.Debug("[Analyzer] Initialized",
		slog.String("grammar", grammar.String()),
		slog.Bool("strip_markdown", opts.StripMarkdown))

	return NewAnalyzer(classifier, extractor), nil
}
