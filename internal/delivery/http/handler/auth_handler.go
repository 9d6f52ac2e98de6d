package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskhub/internal/application/auth"
	domain "taskhub/internal/domain/auth"
	"taskhub/internal/domain/user"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := creds.Validate(); err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SignUp(creds); err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			SendError(w, "Username already exists", http.StatusConflict)
		default:
			SendError(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	SendSuccess(w, http.StatusCreated, "User registered successfully", nil)
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if creds.Username == "" || creds.Password == "" {
		SendError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignIn(creds)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			SendError(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			SendError(w, "Failed to sign in", http.StatusInternalServerError)
		}
		return
	}

	SendJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	u := GetUserFromContext(r.Context())
	if u == nil {
		SendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	SendSuccess(w, http.StatusOK, "", u.ToResponse())
}
