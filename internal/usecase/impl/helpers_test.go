package impl

import (
	"io"
	"log/slog"

	"catalog/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforceOwnership bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           4,
			EnforceBookOwnership: enforceOwnership,
		},
	}
}
