package impl

import (
	"io"
	"log/slog"
	"time"

	"quill/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestConfig(codeTTL time.Duration, maxAttempts int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			CodeTTL:           codeTTL,
			MaxVerifyAttempts: maxAttempts,
		},
	}
}

func newSeedTestConfig(examplePosts bool) *config.Config {
	return &config.Config{
		Seed: &config.SeedConfig{
			ExamplePosts: examplePosts,
		},
	}
}
