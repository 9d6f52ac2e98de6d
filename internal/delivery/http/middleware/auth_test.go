package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domain "taskhub/internal/domain/auth"
	"taskhub/internal/domain/user"
)

type fakeAuthService struct {
	validTokens map[string]*user.User
}

func (f *fakeAuthService) SignUp(creds domain.Credentials) error { return nil }

func (f *fakeAuthService) SignIn(creds domain.Credentials) (*domain.TokenResponse, error) {
	return nil, user.ErrInvalidCredentials
}

func (f *fakeAuthService) ValidateToken(token string) (*user.User, error) {
	u, ok := f.validTokens[token]
	if !ok {
		return nil, user.ErrUnauthorized
	}
	return u, nil
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	alice := &user.User{ID: "u1", Username: "alice"}
	svc := &fakeAuthService{validTokens: map[string]*user.User{"good-token": alice}}

	var seen *user.User
	protected := Auth(svc)(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser *user.User
	}{
		{"valid bearer token", "Bearer good-token", http.StatusOK, alice},
		{"missing header", "", http.StatusUnauthorized, nil},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized, nil},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantUser, seen)
		})
	}
}
