// internal/app/features/groups/edit.go
package groups

import (
	"context"
	"net/http"
	"strings"

	"github.com/rosterhub/rosterhub/internal/app/system/htmlsanitize"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

type editGroupRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Banner   string `json:"banner"`
}

// HandleEdit handles POST /groups/{id}/edit. The update is partial: blank
// or absent fields keep their stored values rather than being cleared.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req editGroupRequest
	if !httpapi.DecodeBody(w, r, &req) {
		return
	}

	title := htmlsanitize.Strict(strings.TrimSpace(req.Title))
	subtitle := htmlsanitize.Strict(strings.TrimSpace(req.Subtitle))
	banner := htmlsanitize.Strict(strings.TrimSpace(req.Banner))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Groups.UpdateInfo(ctx, id, title, subtitle, banner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "edit group failed", err, "Could not update group")
		return
	}

	regs, err := h.Memberships.RegsByGroup(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not update group")
		return
	}
	updated.StudentRegs = regs
	if updated.StudentRegs == nil {
		updated.StudentRegs = []string{}
	}

	httpapi.WriteJSON(w, http.StatusOK, updated)
}
