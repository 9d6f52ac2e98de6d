package auth

import (
	"errors"
	"log/slog"

	domain "taskhub/internal/domain/auth"
	"taskhub/internal/domain/user"
)

// ErrInternal is the opaque failure returned when storage misbehaves.
// The underlying cause is logged, never surfaced to callers.
var ErrInternal = errors.New("internal error")

// Service defines the authentication service interface
type Service interface {
	SignUp(creds domain.Credentials) error
	SignIn(creds domain.Credentials) (*domain.TokenResponse, error)
	ValidateToken(token string) (*user.User, error)
}

type service struct {
	userRepo user.Repository
	tokens   *TokenManager
	logger   *slog.Logger
}

// NewService creates a new auth service
func NewService(userRepo user.Repository, tokens *TokenManager, logger *slog.Logger) Service {
	return &service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignUp hashes the password and persists the account. Username
// uniqueness is left to the store's constraint; a duplicate surfaces as
// user.ErrUsernameTaken. No token is issued on sign-up.
func (s *service) SignUp(creds domain.Credentials) error {
	hashedPassword, err := HashPassword(creds.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return ErrInternal
	}

	newUser := &user.User{
		Username: creds.Username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return user.ErrUsernameTaken
		}
		s.logger.Error("failed to create user", "username", creds.Username, "error", err)
		return ErrInternal
	}

	s.logger.Info("user registered", "username", creds.Username)
	return nil
}

// SignIn verifies the credentials and mints an access token. An unknown
// username and a wrong password both yield user.ErrInvalidCredentials so
// callers cannot probe which usernames exist.
func (s *service) SignIn(creds domain.Credentials) (*domain.TokenResponse, error) {
	u, err := s.userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", "error", err)
		return nil, ErrInternal
	}

	if !CheckPassword(u.Password, creds.Password) {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Username)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		return nil, ErrInternal
	}

	s.logger.Info("user signed in", "username", u.Username)
	return &domain.TokenResponse{AccessToken: token}, nil
}

// ValidateToken verifies a bearer token and resolves its subject to a
// full account. Every failure mode collapses to user.ErrUnauthorized.
func (s *service) ValidateToken(token string) (*user.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, user.ErrUnauthorized
	}

	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, user.ErrUnauthorized
	}
	return u, nil
}
