// internal/app/features/uploads/routes.go
package uploads

import (
	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/teachers", h.HandleUploadTeachers)
	r.Post("/students", h.HandleUploadStudents)

	return r
}
