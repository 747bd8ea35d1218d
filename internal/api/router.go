package api

import (
	"net/http"

	"github.com/AlexanderSS88/adboard/internal/api/handlers"
	"github.com/AlexanderSS88/adboard/internal/api/middleware"
	"github.com/AlexanderSS88/adboard/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User, services.Auth)
	advHandler := handlers.NewAdvertisingHandler(services.Advertising, services.Auth)

	requireToken := middleware.Auth(services.Auth)

	r.Post("/login", authHandler.Login)

	r.Route("/user", func(r chi.Router) {
		// Advertising routes sit under /user/adv/. Creation and reads are
		// open; PATCH requires a token but no ownership, DELETE requires
		// both. The uneven guard coverage mirrors the public contract.
		r.Route("/adv", func(r chi.Router) {
			r.Post("/", advHandler.Create)
			r.Get("/{advID}", advHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireToken)
				r.Patch("/{advID}", advHandler.Update)
				r.Delete("/{advID}", advHandler.Delete)
			})
		})

		r.Post("/", userHandler.Create)
		r.Get("/{userID}", userHandler.Get)
		r.Patch("/{userID}", userHandler.Update)

		r.Group(func(r chi.Router) {
			r.Use(requireToken)
			r.Delete("/{userID}", userHandler.Delete)
		})
	})

	return r
}
