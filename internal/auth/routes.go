package auth

import (
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(tm *TokenManager) http.Handler {
	r := chi.NewRouter()

	r.With(middleware.LoginRateLimit()).Post("/login", LoginHandler(tm))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tm))
		r.Post("/logout", LogoutHandler(tm))
		r.Get("/me", MeHandler())
	})

	return r
}
