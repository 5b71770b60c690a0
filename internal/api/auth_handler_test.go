package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurosawa/kotoba-api/internal/api/shared"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/mocks"
	"github.com/mkurosawa/kotoba-api/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
	passwordVerifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}

	handler := NewAuthHandler(userStore, userStore, jwtService, passwordVerifier, testLogger())

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "invalid-email",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "test2@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, handler.Register, "/api/auth/register", tc.payload)

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, "test-refresh", resp.RefreshToken)
				assert.NotEqual(t, uuid.Nil, resp.UserID)
			}
		})
	}
}

func TestRegisterDoesNotEchoPassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
	handler := NewAuthHandler(userStore, userStore, jwtService, &mocks.MockPasswordVerifier{}, testLogger())

	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"email":    "echo@example.com",
		"password": "password1234567",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password1234567")
}

func TestRegisterDelegatesToRegistrar(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	var registered *domain.User
	userStore.RegisterFn = func(ctx context.Context, user *domain.User) error {
		registered = user
		return userStore.Create(ctx, user)
	}
	jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
	handler := NewAuthHandler(userStore, userStore, jwtService, &mocks.MockPasswordVerifier{}, testLogger())

	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"email":    "newuser@example.com",
		"password": "password1234567",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, registered)
	assert.Equal(t, "newuser@example.com", registered.Email)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("known@example.com", "password1234567")
	require.NoError(t, err)
	user.HashedPassword = "stored-hash"
	user.Password = ""

	tests := []struct {
		name          string
		payload       map[string]interface{}
		verifyOK      bool
		getByEmailErr error
		wantStatus    int
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"email":    "known@example.com",
				"password": "password1234567",
			},
			verifyOK:   true,
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "known@example.com",
				"password": "wrong-password12",
			},
			verifyOK:   false,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password1234567",
			},
			verifyOK:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "known@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			userStore.Users[user.Email] = user
			jwtService := &mocks.MockJWTService{Token: "test-token", RefreshToken: "test-refresh"}
			verifier := &mocks.MockPasswordVerifier{ShouldSucceed: tc.verifyOK}
			handler := NewAuthHandler(userStore, userStore, jwtService, verifier, testLogger())

			w := postJSON(t, handler.Login, "/api/auth/login", tc.payload)

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusOK {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "test-token", resp.AccessToken)
				assert.Equal(t, user.ID, resp.UserID)
				assert.Equal(t, "stored-hash", verifier.CompareCalledWith.HashedPassword)
			}
		})
	}
}

func TestLoginIdenticalResponseForUnknownUserAndWrongPassword(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("known@example.com", "password1234567")
	require.NoError(t, err)
	user.HashedPassword = "stored-hash"

	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user
	jwtService := &mocks.MockJWTService{Token: "t", RefreshToken: "r"}

	handler := NewAuthHandler(
		userStore,
		userStore,
		jwtService,
		&mocks.MockPasswordVerifier{ShouldSucceed: false},
		testLogger(),
	)

	wrongPassword := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"email":    "known@example.com",
		"password": "wrong-password12",
	})
	unknownUser := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password1234567",
	})

	// Both failure modes must be indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	var a, b shared.ErrorResponse
	require.NoError(t, json.NewDecoder(wrongPassword.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(unknownUser.Body).Decode(&b))
	assert.Equal(t, a.Error, b.Error)
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		claims      *auth.Claims
		validateErr error
		wantStatus  int
	}{
		{
			name:       "valid refresh token",
			payload:    map[string]interface{}{"refresh_token": "good-refresh"},
			claims:     &auth.Claims{UserID: userID},
			wantStatus: http.StatusOK,
		},
		{
			name:        "expired refresh token",
			payload:     map[string]interface{}{"refresh_token": "stale-refresh"},
			validateErr: auth.ErrExpiredRefreshToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "access token presented as refresh token",
			payload:     map[string]interface{}{"refresh_token": "access-token"},
			validateErr: auth.ErrWrongTokenType,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:       "missing refresh token",
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Token:        "new-access",
				RefreshToken: "new-refresh",
				Claims:       tc.claims,
				ValidateErr:  tc.validateErr,
			}
			userStore := mocks.NewMockUserStore()
			handler := NewAuthHandler(
				userStore,
				userStore,
				jwtService,
				&mocks.MockPasswordVerifier{ShouldSucceed: true},
				testLogger(),
			)

			w := postJSON(t, handler.RefreshToken, "/api/auth/refresh", tc.payload)

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusOK {
				var resp RefreshTokenResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "new-access", resp.AccessToken)
				assert.Equal(t, "new-refresh", resp.RefreshToken)
			}
		})
	}
}
