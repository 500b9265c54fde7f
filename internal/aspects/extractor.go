package aspects

import "log/slog"

// Tagger splits text into tokens and attaches a Penn Treebank tag to each.
type Tagger interface {
	Tag(text string) []TaggedToken
}

type Extractor struct {
	tagger  Tagger
	grammar *Grammar
}

// NewExtractor uses DefaultGrammar when grammar is nil.
func NewExtractor(tagger Tagger, grammar *Grammar) *Extractor {
	if grammar == nil {
		grammar = MustParseGrammar(DefaultGrammar)
	}
	return &Extractor{tagger: tagger, grammar: grammar}
}

// ExtractAspects returns the words of every chunk in input order. The result
// is never nil.
func (e *Extractor) ExtractAspects(text string) []string {
	words := []string{}

	tokens := e.tagger.Tag(text)
	chunks := e.grammar.Chunks(tokens)
	for _, chunk := range chunks {
		for _, tok := range chunk {
			words = append(words, tok.Text)
		}
	}

	slog.Debug("[Aspects] Extracted aspects",
		slog.String("grammar", e.grammar.String()),
		slog.Int("tokens", len(tokens)),
		slog.Int("chunks", len(chunks)))

	return words
}
