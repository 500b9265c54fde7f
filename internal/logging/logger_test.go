package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogger_RespectsLevel(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	InitLogger(&buf, slog.LevelWarn)

	slog.Info("[Test] hidden")
	slog.Warn("[Test] shown", slog.String("key", "value"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[Test] shown")
	assert.Contains(t, buf.String(), "value")
}
