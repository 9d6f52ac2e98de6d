package middleware

import (
	"context"
	"net/http"
	"strings"

	"taskhub/internal/application/auth"
	"taskhub/internal/delivery/http/handler"
	"taskhub/internal/domain/user"
)

// Auth gates a handler behind bearer-token authentication. It verifies
// the token, resolves the subject to a full account, and attaches it to
// the request context. A missing token, a bad token, and a subject that
// no longer resolves all produce the same 401.
func Auth(authService auth.Service) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				handler.SendError(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			u, err := authService.ValidateToken(token)
			if err != nil {
				handler.SendError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handler.UserContextKey, u)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUserFromContext retrieves the resolved identity from request context
func GetUserFromContext(ctx context.Context) *user.User {
	return handler.GetUserFromContext(ctx)
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
