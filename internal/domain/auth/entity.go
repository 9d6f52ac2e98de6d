package auth

import (
	"errors"
	"unicode"
)

var (
	ErrInvalidUsername = errors.New("username must be 4-20 characters")
	ErrInvalidPassword = errors.New("password must be 3-20 characters")
	ErrWeakPassword    = errors.New("password must contain an upper case letter, a lower case letter, and a number or symbol")
)

// Credentials is the username/password pair presented on sign-up and
// sign-in. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the structural rules for credentials: username length
// 4-20, password length 3-20 containing at least one upper case letter,
// one lower case letter, and one digit or symbol.
func (c Credentials) Validate() error {
	if n := len(c.Username); n < 4 || n > 20 {
		return ErrInvalidUsername
	}
	if n := len(c.Password); n < 3 || n > 20 {
		return ErrInvalidPassword
	}

	var upper, lower, digitOrSymbol bool
	for _, r := range c.Password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		default:
			digitOrSymbol = true
		}
	}
	if !upper || !lower || !digitOrSymbol {
		return ErrWeakPassword
	}
	return nil
}

// TokenResponse represents a successful sign-in response
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
