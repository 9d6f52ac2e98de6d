package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/internal/domain/user"
)

// TokenManager mints and verifies the signed bearer tokens that carry a
// session. The secret and expiry are fixed at construction; rotating the
// secret invalidates every outstanding token.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager creates a token manager with the given signing secret
// and token lifetime.
func NewTokenManager(secret []byte, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: secret, expiry: expiry}
}

// Issue mints an HS256-signed token binding the given username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	})
	return token.SignedString(m.secret)
}

// Verify checks the token's signature and expiry and returns the bound
// username. Malformed encoding, a bad signature, and expiry all collapse
// to ErrInvalidToken so callers cannot tell which check failed.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", user.ErrInvalidToken
	}

	return claims.Subject, nil
}
