// Package postgres implements the store interfaces against PostgreSQL.
// It owns the embedded schema migrations and the mapping between driver
// errors and the sentinel errors the rest of the application matches on.
package postgres
