// Package logger configures the application's structured logging and
// provides helpers for passing request-scoped loggers through contexts.
package logger
