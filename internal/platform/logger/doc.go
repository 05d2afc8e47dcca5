// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Every line is written to stdout and, when a log
// file is configured, appended to a size-rotated file managed by lumberjack.
package logger
