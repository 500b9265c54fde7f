package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DEFAULT_OUTPUT    = "text"
	DEFAULT_GRAMMAR   = "Aspect: {<NN><NN|NNS>}"
	DEFAULT_LOG_LEVEL = "warn"
)

type AnalyzerConfig struct {
	Output        string
	Grammar       string
	StripMarkdown bool
	LogLevel      slog.Level
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		slog.Warn("Invalid boolean in environment, using default",
			slog.String("key", key),
			slog.String("value", value))
		return defaultValue
	}
	return parsed
}

func ParseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return level
}

func GetAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Output:        getEnv("ANALYZER_OUTPUT", DEFAULT_OUTPUT),
		Grammar:       getEnv("ANALYZER_GRAMMAR", DEFAULT_GRAMMAR),
		StripMarkdown: getEnvBool("ANALYZER_STRIP_MARKDOWN", false),
		LogLevel:      ParseLogLevel(getEnv("LOG_LEVEL", DEFAULT_LOG_LEVEL)),
	}
}
