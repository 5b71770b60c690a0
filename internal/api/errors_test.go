package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
	"github.com/mkurosawa/kotoba-api/internal/service/auth"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"expired refresh token", auth.ErrExpiredRefreshToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"no active session", quiz.ErrNoActiveSession, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"no mistakes tracked", quiz.ErrNoMistakesTracked, http.StatusConflict},
		{"hint pending", quiz.ErrHintPending, http.StatusConflict},
		{"session completed", domain.ErrSessionCompleted, http.StatusConflict},
		{"question already answered", domain.ErrQuestionAnswered, http.StatusConflict},
		{"question not answered", domain.ErrQuestionNotAnswered, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid category", domain.ErrInvalidCategory, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCodeWrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading progress: %w", quiz.ErrNoActiveSession)
	assert.Equal(t, http.StatusNotFound, MapErrorToStatusCode(wrapped))

	doubleWrapped := fmt.Errorf("handler: %w", fmt.Errorf("store: %w", store.ErrEmailExists))
	assert.Equal(t, http.StatusConflict, MapErrorToStatusCode(doubleWrapped))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		want    string
		notWant string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "An unexpected error occurred",
		},
		{
			name: "invalid token",
			err:  auth.ErrInvalidToken,
			want: "Invalid token",
		},
		{
			name: "refresh token errors collapse to one message",
			err:  auth.ErrExpiredRefreshToken,
			want: "Invalid refresh token",
		},
		{
			name: "no active session",
			err:  quiz.ErrNoActiveSession,
			want: "No active quiz session",
		},
		{
			name: "no mistakes tracked",
			err:  quiz.ErrNoMistakesTracked,
			want: "No mistakes tracked yet",
		},
		{
			name: "hint pending",
			err:  quiz.ErrHintPending,
			want: "A hint for this question is still being generated",
		},
		{
			name: "session completed",
			err:  domain.ErrSessionCompleted,
			want: "Quiz session already completed",
		},
		{
			name: "invalid category",
			err:  domain.ErrInvalidCategory,
			want: "Invalid category",
		},
		{
			name:    "internal detail never leaks",
			err:     errors.New("pq: connection refused host=10.0.0.5"),
			want:    "An unexpected error occurred",
			notWant: "10.0.0.5",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.notWant != "" {
				assert.NotContains(t, got, tc.notWant)
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "required tag",
			input: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
			want:  "Invalid Email: required field",
		},
		{
			name:  "email tag",
			input: "Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag",
			want:  "Invalid Email: invalid email format",
		},
		{
			name:  "min tag",
			input: "Key: 'RegisterRequest.Password' Error:Field validation for 'Password' failed on the 'min' tag",
			want:  "Invalid Password: too short",
		},
		{
			name:  "unrecognized error shape",
			input: "some internal validation failure",
			want:  "Validation error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SanitizeValidationError(errors.New(tc.input)))
		})
	}
}
