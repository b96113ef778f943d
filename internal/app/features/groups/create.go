// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"
	"strings"

	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"github.com/rosterhub/rosterhub/internal/app/system/htmlsanitize"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultBanner is used when the client does not pick a banner color.
const defaultBanner = "blue"

type createGroupRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Banner   string `json:"banner"`
}

// HandleCreate handles POST /groups. Title is required; subtitle defaults
// to empty and banner to a color token. The new group starts with an empty
// roster and no aggregate mark.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	teacherID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpapi.Unauthorized(w, "Not authenticated")
		return
	}

	var req createGroupRequest
	if !httpapi.DecodeBody(w, r, &req) {
		return
	}

	title := htmlsanitize.Strict(strings.TrimSpace(req.Title))
	if title == "" {
		httpapi.BadRequest(w, "Title is required")
		return
	}
	subtitle := htmlsanitize.Strict(strings.TrimSpace(req.Subtitle))
	banner := htmlsanitize.Strict(strings.TrimSpace(req.Banner))
	if banner == "" {
		banner = defaultBanner
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Groups.Create(ctx, models.Group{
		Title:     title,
		Subtitle:  subtitle,
		Banner:    banner,
		TeacherID: teacherID,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create group failed", err, "Could not create group")
		return
	}

	created.StudentRegs = []string{}
	httpapi.WriteJSON(w, http.StatusCreated, created)
}
