// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. When running under CI the JSON handler can be wrapped
// with CIHandler, which stamps every record with the pipeline metadata.
package logger
