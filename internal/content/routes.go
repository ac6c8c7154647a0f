package content

import (
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/middleware"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the content API. Reads on sections, gallery, menu
// and settings are public; every mutation, and everything touching
// contact submissions, sits behind the auth gate.
func SetupRoutes(resolver middleware.SessionResolver, store *uploads.Store) http.Handler {
	r := chi.NewRouter()

	r.Get("/sections", SectionListHandler)
	r.Get("/sections/{id}", SectionGetHandler)
	r.Get("/gallery", GalleryListHandler)
	r.Get("/gallery/{id}", GalleryGetHandler)
	r.Get("/menu", MenuListHandler)
	r.Get("/settings", SettingsListHandler)
	r.Post("/contact", ContactHandler)
	r.Get("/uploads/*", uploads.ServeHandler(store))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(resolver))

		r.Put("/sections/{id}", SectionUpdateHandler(store))
		r.Delete("/sections/{id}", SectionImageDeleteHandler(store))

		r.Post("/gallery", GalleryCreateHandler)
		r.Put("/gallery/{id}", GalleryUpdateHandler(store))
		r.Delete("/gallery/{id}", GalleryDeleteHandler(store))

		r.Post("/menu", MenuCreateHandler)
		r.Put("/menu/{id}", MenuUpdateHandler)
		r.Delete("/menu/{id}", MenuDeleteHandler)

		r.Put("/settings", SettingsUpdateHandler)

		r.Get("/submissions", SubmissionListHandler)
		r.Get("/submissions/{id}", SubmissionGetHandler)
		r.Delete("/submissions/{id}", SubmissionDeleteHandler)
	})

	return r
}
