// internal/app/features/students/routes.go
package students

import (
	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
)

// Routes mounts the student endpoints. Everything here requires a
// signed-in teacher.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/{regNo}/add-mark", h.HandleAddMark)
	r.Get("/{regNo}/group", h.HandleGroup)

	return r
}
