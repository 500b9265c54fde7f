package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// PolarityScorer produces a compound polarity score in [-1, 1].
type PolarityScorer interface {
	Compound(text string) float64
}

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown to html, drops the tags and removes links.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plainText), " ")
}
