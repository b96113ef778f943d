// internal/app/features/uploads/students.go
package uploads

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/app/system/xlsxutil"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUploadStudents handles POST /upload/students. Re-uploading a
// roster updates names and details in place; existing marks and group
// memberships are untouched.
func (h *Handler) HandleUploadStudents(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rows, userErr, err := xlsxutil.PreScanStudentsXLSX(file)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "student upload prescan failed", err, "Could not read the uploaded file")
		return
	}
	if userErr != "" {
		httpapi.BadRequest(w, userErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	for _, row := range rows {
		st := models.Student{
			RegNo:        row.RegNo,
			Name:         row.Name,
			Email:        row.Email,
			OtherDetails: row.OtherDetails,
		}
		if err := h.Students.Upsert(ctx, st); err != nil {
			h.ErrLog.LogServerError(w, r, "student upsert failed", err, "Import failed partway; re-upload to finish")
			return
		}
	}

	importID := uuid.NewString()
	h.Log.Info("students imported",
		zap.Int("count", len(rows)),
		zap.String("import_id", importID))

	httpapi.WriteJSON(w, http.StatusOK, uploadResponse{
		OK:       true,
		Imported: len(rows),
		ImportID: importID,
	})
}
