// internal/app/features/groups/addstudent.go
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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type rosterRequest struct {
	RegNo string `json:"regNo"`
}

// HandleAddStudent handles POST /groups/{id}/add-student. A student may
// belong to at most one group anywhere; the membership insert itself
// enforces that, so a racing add in another group cannot slip through
// between the precondition checks and the write.
func (h *Handler) HandleAddStudent(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Groups.GetByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load group failed", err, "Could not add student")
		return
	}

	if _, err := h.Students.GetByRegNo(ctx, regNo); err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Student not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load student failed", err, "Could not add student")
		return
	}

	if err := h.Memberships.Add(ctx, id, regNo); err != nil {
		if errors.Is(err, membershipstore.ErrAlreadyGrouped) {
			httpapi.Conflict(w, "Student already in a group")
			return
		}
		h.ErrLog.LogServerError(w, r, "add membership failed", err, "Could not add student")
		return
	}

	group, err := h.groupAfterAdd(ctx, id, regNo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load group failed", err, "Could not add student")
		return
	}

	h.Log.Info("student added to group",
		zap.String("group_id", id.Hex()),
		zap.String("reg_no", regNo))

	regs, err := h.Memberships.RegsByGroup(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not add student")
		return
	}
	group.StudentRegs = regs

	httpapi.WriteJSON(w, http.StatusOK, group)
}

// groupAfterAdd re-reads the group after the membership insert. A delete
// committing between the precondition read and the insert would leave a
// membership row without its group, locking the student out of every
// other group; in that case the insert is undone and ErrNoDocuments is
// returned so the caller answers as for an unknown group.
func (h *Handler) groupAfterAdd(ctx context.Context, id primitive.ObjectID, regNo string) (models.Group, error) {
	group, err := h.Groups.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		if rmErr := h.Memberships.Remove(ctx, id, regNo); rmErr != nil && !errors.Is(rmErr, membershipstore.ErrNotInGroup) {
			h.Log.Error("failed to undo membership for deleted group",
				zap.String("group_id", id.Hex()),
				zap.String("reg_no", regNo),
				zap.Error(rmErr))
		}
	}
	return group, err
}
