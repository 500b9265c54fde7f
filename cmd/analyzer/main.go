package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/aspectsense/config"
	"github.com/spacesedan/aspectsense/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg := config.GetAnalyzerConfig()
	logging.InitLogger(os.Stderr, cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		slog.Error("[Main] Analyzer failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
