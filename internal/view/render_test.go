package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spacesedan/aspectsense/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = models.AnalysisResult{
	Text:      "battery life is great",
	Sentiment: models.SentimentResult{Label: models.Positive, Score: 0.6249},
	Aspects:   []string{"battery", "life"},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"text": FormatText, "JSON": FormatJSON, " yaml ": FormatYAML, "yml": FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, sample))

	want := "Aspects: battery, life\n" +
		"Result:  Positive (0.6249)\n" +
		"[\U0001F600]  \U0001F610   \U0001F615 \n"
	assert.Equal(t, want, buf.String())
}

func TestRender_TextNoAspects(t *testing.T) {
	var buf bytes.Buffer
	r := models.AnalysisResult{Sentiment: models.SentimentResult{Label: models.Neutral}}
	require.NoError(t, Render(&buf, FormatText, r))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Aspects: No aspects found", lines[0])
	assert.Equal(t, "Result:  Neutral (0.0000)", lines[1])
	assert.Contains(t, lines[2], "[\U0001F610]")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sample))

	assert.JSONEq(t,
		`{"text":"battery life is great","sentiment":{"label":"Positive","score":0.6249},"aspects":["battery","life"]}`,
		buf.String())
}

func TestRender_JSONEmptyAspects(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, models.AnalysisResult{}))
	assert.Contains(t, buf.String(), `"aspects":[]`)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sample))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "battery life is great", decoded["text"])
	assert.Equal(t, []any{"battery", "life"}, decoded["aspects"])
	assert.Equal(t, "Positive", decoded["sentiment"].(map[string]any)["label"])
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, Format("xml"), sample)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestIndicatorRow_Negative(t *testing.T) {
	row := IndicatorRow(models.Negative)
	assert.True(t, strings.HasSuffix(row, "[\U0001F615]"))
	assert.Equal(t, 1, strings.Count(row, "["))
}
