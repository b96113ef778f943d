// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles POST /auth/logout. Signing out an already signed-out
// session is fine; the cookie is cleared either way.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("logout: clear session failed", zap.Error(err))
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
