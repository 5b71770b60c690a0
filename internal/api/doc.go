// Package api implements the HTTP handlers for the kotoba API: account
// registration and login, quiz session flow, per-item progress queries,
// catalog discovery, and dictionary lookup. Handlers translate internal
// errors to sanitized HTTP responses; business rules live in the domain,
// quiz, and discovery packages.
package api
