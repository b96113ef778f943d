// internal/app/features/groups/setmarks.go
package groups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/numeric"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// setMarksRequest accepts the aggregate value under either field name.
// Older clients send "marks"; "score" wins when both are present.
type setMarksRequest struct {
	Score json.RawMessage `json:"score"`
	Marks json.RawMessage `json:"marks"`
}

// HandleSetMarks handles POST /groups/{id}/set-marks. The aggregate mark
// is entered manually; it is never derived from member marks.
func (h *Handler) HandleSetMarks(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req setMarksRequest
	if !httpapi.DecodeBody(w, r, &req) {
		return
	}

	value, err := numeric.ParseJSON(req.Score)
	if errors.Is(err, numeric.ErrMissing) {
		value, err = numeric.ParseJSON(req.Marks)
	}
	if err != nil {
		if errors.Is(err, numeric.ErrMissing) {
			httpapi.BadRequest(w, "Missing score")
			return
		}
		httpapi.BadRequest(w, "Invalid score. Must be a number.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Groups.SetMarks(ctx, id, value)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "set group marks failed", err, "Could not set marks")
		return
	}

	regs, err := h.Memberships.RegsByGroup(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not set marks")
		return
	}
	updated.StudentRegs = regs
	if updated.StudentRegs == nil {
		updated.StudentRegs = []string{}
	}

	httpapi.WriteJSON(w, http.StatusOK, updated)
}
