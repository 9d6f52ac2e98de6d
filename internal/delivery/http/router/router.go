package router

import (
	"net/http"

	"taskhub/internal/application/auth"
	"taskhub/internal/delivery/http/handler"
	"taskhub/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth *handler.AuthHandler
	Task *handler.TaskHandler
}

// Setup configures all routes for the application
func Setup(handlers Handlers, authService auth.Service, corsConfig middleware.CORSConfig) *http.ServeMux {
	mux := http.NewServeMux()

	cors := middleware.CORS(corsConfig)
	authRequired := middleware.Auth(authService)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// Auth routes (public)
	mux.HandleFunc("/api/auth/signup", cors(handlers.Auth.SignUp))
	mux.HandleFunc("/api/auth/signin", cors(handlers.Auth.SignIn))
	mux.HandleFunc("/api/auth/me", chain(handlers.Auth.Me, cors, authRequired))

	// Task routes (protected)
	mux.HandleFunc("/api/tasks", chain(handlers.Task.HandleTasks, cors, authRequired))
	mux.HandleFunc("/api/tasks/", chain(handlers.Task.HandleTaskByID, cors, authRequired))

	return mux
}
