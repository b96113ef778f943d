// internal/app/features/students/group.go
package students

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/normalize"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// studentGroupResponse carries a null group when the student is not in
// one; clients branch on that rather than on a status code.
type studentGroupResponse struct {
	Group *models.Group `json:"group"`
}

// HandleGroup handles GET /students/{regNo}/group. This is a pure
// membership lookup: an unknown registration number and an ungrouped
// student get the same null-group answer.
func (h *Handler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	regNo := normalize.RegNo(chi.URLParam(r, "regNo"))
	if regNo == "" {
		httpapi.BadRequest(w, "Registration number is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groupID, err := h.Memberships.FindGroupIDByReg(ctx, regNo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.WriteJSON(w, http.StatusOK, studentGroupResponse{Group: nil})
			return
		}
		h.ErrLog.LogServerError(w, r, "load membership failed", err, "Could not load group")
		return
	}

	group, err := h.Groups.GetByID(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// The group vanished under the membership row; answer as
			// if the student were ungrouped.
			httpapi.WriteJSON(w, http.StatusOK, studentGroupResponse{Group: nil})
			return
		}
		h.ErrLog.LogServerError(w, r, "load group failed", err, "Could not load group")
		return
	}

	regs, err := h.Memberships.RegsByGroup(ctx, groupID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not load group")
		return
	}
	group.StudentRegs = regs

	httpapi.WriteJSON(w, http.StatusOK, studentGroupResponse{Group: &group})
}
