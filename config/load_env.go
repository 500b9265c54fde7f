package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

const envDir = "config/envs/.env."

func LoadEnv(env string) {
	envFile := envDir + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
