// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /groups requires authentication
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST
		pr.Get("/", h.HandleList)

		// CREATE
		pr.Post("/", h.HandleCreate)

		// DETAIL (group + roster)
		pr.Get("/{id}", h.HandleDetail)

		// EDIT
		pr.Post("/{id}/edit", h.HandleEdit)

		// DELETE
		pr.Delete("/{id}", h.HandleDelete)

		// ROSTER
		pr.Post("/{id}/add-student", h.HandleAddStudent)
		pr.Post("/{id}/remove-student", h.HandleRemoveStudent)

		// AGGREGATE MARKS
		pr.Post("/{id}/set-marks", h.HandleSetMarks)
	})

	return r
}
