// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList handles GET /groups. It returns the session teacher's groups
// with their rosters hydrated in one membership query.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	teacherID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpapi.Unauthorized(w, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.ListByTeacher(ctx, teacherID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list groups failed", err, "Could not load groups")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	regsByGroup, err := h.Memberships.RegsByGroups(ctx, ids)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load rosters failed", err, "Could not load groups")
		return
	}

	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		g.StudentRegs = regsByGroup[g.ID]
		if g.StudentRegs == nil {
			g.StudentRegs = []string{}
		}
		out = append(out, g)
	}

	httpapi.WriteJSON(w, http.StatusOK, out)
}
