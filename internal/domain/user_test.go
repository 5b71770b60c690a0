package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("learner@example.com", "correct-horse-battery")
	require.NoError(t, err)

	assert.NotEqual(t, user.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "learner@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "correct-horse-battery", ErrEmptyEmail},
		{"malformed email", "not-an-email", "correct-horse-battery", ErrInvalidEmail},
		{"short password", "a@example.com", "short", ErrPasswordTooShort},
		{"long password", "a@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	// A user loaded from storage has no plaintext password, only a hash.
	user := &User{
		ID:             mustNewUser(t).ID,
		Email:          "learner@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func mustNewUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("learner@example.com", "correct-horse-battery")
	require.NoError(t, err)
	return u
}
