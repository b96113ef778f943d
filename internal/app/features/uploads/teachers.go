// internal/app/features/uploads/teachers.go
package uploads

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/app/system/xlsxutil"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.uber.org/zap"
)

type uploadResponse struct {
	OK       bool   `json:"ok"`
	Imported int    `json:"imported"`
	ImportID string `json:"importId"`
}

// openUpload pulls the "file" part out of the multipart form, with the
// request body capped well before the parser sees it.
func (h *Handler) openUpload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, xlsxutil.MaxUploadSize)
	if err := r.ParseMultipartForm(xlsxutil.MaxUploadSize); err != nil {
		httpapi.BadRequest(w, "Upload must be a multipart form with a file field")
		return nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httpapi.BadRequest(w, "Upload must be a multipart form with a file field")
		return nil, false
	}
	return file, true
}

// HandleUploadTeachers handles POST /upload/teachers. The whole workbook
// is validated before the first write, so a bad row rejects the import
// without leaving a partial one behind.
func (h *Handler) HandleUploadTeachers(w http.ResponseWriter, r *http.Request) {
	file, ok := h.openUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	rows, userErr, err := xlsxutil.PreScanTeachersXLSX(file)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "teacher upload prescan failed", err, "Could not read the uploaded file")
		return
	}
	if userErr != "" {
		httpapi.BadRequest(w, userErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	for _, row := range rows {
		t := models.Teacher{
			TeacherID: row.TeacherID,
			Name:      row.Name,
			Email:     row.Email,
		}
		if err := h.Teachers.Upsert(ctx, t); err != nil {
			h.ErrLog.LogServerError(w, r, "teacher upsert failed", err, "Import failed partway; re-upload to finish")
			return
		}
	}

	importID := uuid.NewString()
	h.Log.Info("teachers imported",
		zap.Int("count", len(rows)),
		zap.String("import_id", importID))

	httpapi.WriteJSON(w, http.StatusOK, uploadResponse{
		OK:       true,
		Imported: len(rows),
		ImportID: importID,
	})
}
