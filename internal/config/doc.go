// Package config loads the server, database, auth, LLM, task, and Redis
// settings from environment variables and an optional config file, applies
// defaults, and validates the result before any component sees it.
package config
