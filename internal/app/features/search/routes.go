// internal/app/features/search/routes.go
package search

import (
	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.HandleSearch)

	return r
}
