// internal/app/features/students/addmark.go
package students

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/normalize"
	"github.com/rosterhub/rosterhub/internal/app/system/numeric"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type addMarkRequest struct {
	Marks json.RawMessage `json:"marks"`
}

// HandleAddMark handles POST /students/{regNo}/add-mark. "Add" is the
// client's word; the value replaces whatever was there before.
func (h *Handler) HandleAddMark(w http.ResponseWriter, r *http.Request) {
	regNo := normalize.RegNo(chi.URLParam(r, "regNo"))
	if regNo == "" {
		httpapi.BadRequest(w, "Registration number is required")
		return
	}

	var req addMarkRequest
	if !httpapi.DecodeBody(w, r, &req) {
		return
	}

	marks, err := numeric.ParseJSON(req.Marks)
	if err != nil {
		httpapi.BadRequest(w, "Invalid marks. Must be a number.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Students.SetMarks(ctx, regNo, marks)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Student not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "set student marks failed", err, "Could not set marks")
		return
	}

	h.Log.Info("student marks set",
		zap.String("reg_no", regNo),
		zap.Float64("marks", marks))

	httpapi.WriteJSON(w, http.StatusOK, updated)
}
