package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mkurosawa/kotoba-api/internal/api/shared"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
	"github.com/mkurosawa/kotoba-api/internal/service/auth"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, quiz.ErrNoActiveSession):
		return http.StatusNotFound

	// Conflict errors: the request is well-formed but collides with the
	// current state of the session or account
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, quiz.ErrNoMistakesTracked),
		errors.Is(err, quiz.ErrHintPending),
		errors.Is(err, domain.ErrSessionCompleted),
		errors.Is(err, domain.ErrQuestionAnswered),
		errors.Is(err, domain.ErrQuestionNotAnswered):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, quiz.ErrNoActiveSession):
		return "No active quiz session"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, quiz.ErrNoMistakesTracked):
		return "No mistakes tracked yet"

	case errors.Is(err, quiz.ErrHintPending):
		return "A hint for this question is still being generated"

	case errors.Is(err, domain.ErrSessionCompleted):
		return "Quiz session already completed"

	case errors.Is(err, domain.ErrQuestionAnswered):
		return "Current question already answered"

	case errors.Is(err, domain.ErrQuestionNotAnswered):
		return "Current question not answered yet"

	case errors.Is(err, domain.ErrInvalidCategory):
		return "Invalid category"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response for the given internal error,
// mapping it to a status code and sanitized message. An empty userMessage
// falls back to the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// SanitizeValidationError removes sensitive details from validator errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
