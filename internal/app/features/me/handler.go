// internal/app/features/me/handler.go
package me

import (
	"context"
	"net/http"

	teacherstore "github.com/rosterhub/rosterhub/internal/app/store/teachers"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Log      *zap.Logger
	ErrLog   *httpapi.ErrorLogger
	Teachers *teacherstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   httpapi.NewErrorLogger(logger),
		Teachers: teacherstore.New(db),
	}
}

// meResponse is what the SPA uses to decide whether someone is signed in.
type meResponse struct {
	OK      bool           `json:"ok"`
	Teacher models.Teacher `json:"teacher"`
}

// ServeMe handles GET /auth/me. The teacher document is read fresh from
// the store, so a name changed by a roster re-upload shows up without a
// new sign-in. A session whose teacher has since been removed from the
// roster is treated as signed out.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.Unauthorized(w, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	teacher, err := h.Teachers.GetByEmail(ctx, u.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.Unauthorized(w, "Not authenticated")
			return
		}
		h.ErrLog.LogServerError(w, r, "load teacher failed", err, "Could not load account")
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, meResponse{OK: true, Teacher: teacher})
}
