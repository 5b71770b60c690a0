// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned when a category string is not one of
	// the known learnable categories.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrSessionCompleted is returned when an answer is submitted to a quiz
	// session that has already reached its terminal state.
	ErrSessionCompleted = errors.New("quiz session already completed")

	// ErrQuestionAnswered is returned when the current question has already
	// been answered and the session is waiting to advance.
	ErrQuestionAnswered = errors.New("current question already answered")

	// ErrQuestionNotAnswered is returned when an advance is requested before
	// the current question has been answered.
	ErrQuestionNotAnswered = errors.New("current question not answered yet")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
