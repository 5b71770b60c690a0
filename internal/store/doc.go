// Package store defines interfaces for data persistence operations.
// These interfaces keep the discovery, quiz, and account logic independent
// of the underlying database; internal/platform/postgres carries the
// PostgreSQL implementations.
package store
