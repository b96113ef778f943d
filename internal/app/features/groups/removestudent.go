// internal/app/features/groups/removestudent.go
package groups

import (
	"context"
	"errors"
	"net/http"

	membershipstore "github.com/rosterhub/rosterhub/internal/app/store/memberships"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/normalize"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type removeStudentResponse struct {
	OK    bool         `json:"ok"`
	Group models.Group `json:"group"`
}

// HandleRemoveStudent handles POST /groups/{id}/remove-student. Removal is
// deliberately not idempotent: removing a student who is not in THIS group
// answers 400, even if they were removed a moment ago.
func (h *Handler) HandleRemoveStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req rosterRequest
	if !httpapi.DecodeBody(w, r, &req) {
		return
	}
	regNo := normalize.RegNo(req.RegNo)
	if regNo == "" {
		httpapi.BadRequest(w, "Registration number is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load group failed", err, "Could not remove student")
		return
	}

	if err := h.Memberships.Remove(ctx, id, regNo); err != nil {
		if errors.Is(err, membershipstore.ErrNotInGroup) {
			httpapi.BadRequest(w, "Student not in this group")
			return
		}
		h.ErrLog.LogServerError(w, r, "remove membership failed", err, "Could not remove student")
		return
	}

	h.Log.Info("student removed from group",
		zap.String("group_id", id.Hex()),
		zap.String("reg_no", regNo))

	regs, err := h.Memberships.RegsByGroup(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not remove student")
		return
	}
	group.StudentRegs = regs
	if group.StudentRegs == nil {
		group.StudentRegs = []string{}
	}

	httpapi.WriteJSON(w, http.StatusOK, removeStudentResponse{OK: true, Group: group})
}
