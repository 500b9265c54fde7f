package aspects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultGrammar chunks a singular noun followed by a singular or plural noun.
const DefaultGrammar = "Aspect: {<NN><NN|NNS>}"

var ErrInvalidGrammar = errors.New("invalid chunk grammar")

var (
	tagNamePattern = regexp.MustCompile(`^[A-Z$]+(\.\*)?$`)
	groupPattern   = regexp.MustCompile(`^<([^<>]*)>([?*+]?)`)
)

type TaggedToken struct {
	Text string `json:"text" yaml:"text"`
	Tag  string `json:"tag" yaml:"tag"`
}

// Grammar is a single chunk rule such as "Aspect: {<NN><NN|NNS>}" compiled
// to a regexp over the encoded tag sequence "<T1><T2>...".
type Grammar struct {
	Label string
	rule  string
	re    *regexp.Regexp
}

func ParseGrammar(rule string) (*Grammar, error) {
	label, body, ok := strings.Cut(rule, ":")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return nil, fmt.Errorf("%w: %q has no label", ErrInvalidGrammar, rule)
	}

	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") {
		return nil, fmt.Errorf("%w: %q is not wrapped in braces", ErrInvalidGrammar, rule)
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return nil, fmt.Errorf("%w: %q has an empty pattern", ErrInvalidGrammar, rule)
	}

	var expr strings.Builder
	for body != "" {
		m := groupPattern.FindStringSubmatch(body)
		if m == nil {
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidGrammar, body, rule)
		}

		alternatives, err := compileGroup(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGrammar, rule, err)
		}
		expr.WriteString("(?:<(?:" + alternatives + ")>)" + m[2])

		body = strings.TrimSpace(body[len(m[0]):])
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGrammar, rule, err)
	}

	return &Grammar{Label: label, rule: rule, re: re}, nil
}

func MustParseGrammar(rule string) *Grammar {
	g, err := ParseGrammar(rule)
	if err != nil {
		panic(err)
	}
	return g
}

func compileGroup(group string) (string, error) {
	var alternatives []string
	for _, tag := range strings.Split(group, "|") {
		tag = strings.TrimSpace(tag)
		if !tagNamePattern.MatchString(tag) {
			return "", fmt.Errorf("bad tag %q", tag)
		}
		if prefix, ok := strings.CutSuffix(tag, ".*"); ok {
			alternatives = append(alternatives, regexp.QuoteMeta(prefix)+"[^<>]*")
			continue
		}
		alternatives = append(alternatives, regexp.QuoteMeta(tag))
	}
	return strings.Join(alternatives, "|"), nil
}

func (g *Grammar) String() string {
	return g.rule
}

// Chunks returns the leftmost, non-overlapping runs of tokens matched by the
// rule, in input order. Empty matches are ignored.
func (g *Grammar) Chunks(tokens []TaggedToken) [][]TaggedToken {
	if len(tokens) == 0 {
		return nil
	}

	var encoded strings.Builder
	offsets := make(map[int]int, len(tokens)+1)
	for i, tok := range tokens {
		offsets[encoded.Len()] = i
		encoded.WriteString("<" + tok.Tag + ">")
	}
	offsets[encoded.Len()] = len(tokens)

	var chunks [][]TaggedToken
	for _, loc := range g.re.FindAllStringIndex(encoded.String(), -1) {
		start, okStart := offsets[loc[0]]
		end, okEnd := offsets[loc[1]]
		if !okStart || !okEnd || start == end {
			continue
		}
		chunks = append(chunks, tokens[start:end])
	}
	return chunks
}
