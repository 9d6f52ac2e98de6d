package handler

import (
	"context"

	"taskhub/internal/domain/user"
)

// contextKey is the type for context keys
type contextKey string

// UserContextKey is the key used to store the resolved identity in context
const UserContextKey contextKey = "user"

// GetUserFromContext retrieves the resolved identity from request context
func GetUserFromContext(ctx context.Context) *user.User {
	u, ok := ctx.Value(UserContextKey).(*user.User)
	if !ok {
		return nil
	}
	return u
}
