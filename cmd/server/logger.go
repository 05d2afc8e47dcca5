package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/wonderwords/internal/config"
	"github.com/phrazzld/wonderwords/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
// The returned closer flushes the log file and must be closed on exit.
func setupAppLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	l, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return l, closer, nil
}
