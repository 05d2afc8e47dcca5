// Package main implements the entry point for the WonderWords server,
// a word explorer for children that asks a language model for meanings,
// opposites, similar words and example sentences.
package main

import (
	"context"
	"fmt"
	"os"
)

// main is the entry point for the wonderwords server.
// It loads configuration, sets up logging, wires the services and runs the
// HTTP server until SIGINT or SIGTERM.
func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "wonderwords: %v\n", err)
		os.Exit(1)
	}
}

// run holds the core startup sequence so main stays trivial.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logCloser.Close()
	}()

	logConfigSummary(logger, cfg)

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
